package wallet

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestIsDenied(t *testing.T) {
	assert.True(t, isDenied(errors.New("Request denied")))
	assert.True(t, isDenied(errors.New("action rejected by user")))
	assert.False(t, isDenied(errors.New("connection refused")))
}

func TestEqualAddressLists(t *testing.T) {
	a := common.HexToAddress("0x01")
	b := common.HexToAddress("0x02")

	assert.True(t, equal(nil, nil))
	assert.True(t, equal([]common.Address{a, b}, []common.Address{a, b}))
	assert.False(t, equal([]common.Address{a, b}, []common.Address{b, a}))
	assert.False(t, equal([]common.Address{a}, []common.Address{a, b}))
	assert.False(t, equal(nil, []common.Address{a}))
}
