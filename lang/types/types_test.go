package types_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/obscurecat64/quackcc/lang/types"
)

func TestPointerAndArraySizes(t *testing.T) {
	p := types.PointerTo(types.TypeInt)
	assert.Equal(t, 8, p.Size)
	assert.Same(t, types.TypeInt, p.Base)

	// int a[2][3]: array-of-2 of array-of-3 of int, size 48.
	inner := types.ArrayOf(types.TypeInt, 3)
	outer := types.ArrayOf(inner, 2)
	assert.Equal(t, 24, inner.Size)
	assert.Equal(t, 48, outer.Size)
}

func TestIsIntegerAndPointerLike(t *testing.T) {
	assert.True(t, types.IsInteger(types.TypeInt))
	assert.False(t, types.IsInteger(types.PointerTo(types.TypeInt)))

	arr := types.ArrayOf(types.TypeInt, 4)
	assert.True(t, types.IsPointerLike(arr))
	assert.True(t, types.IsPointerLike(types.PointerTo(types.TypeInt)))
	assert.False(t, types.IsPointerLike(types.TypeInt))
}

func TestNewFuncChainsParamTypes(t *testing.T) {
	a := types.TypeInt
	b := types.PointerTo(types.TypeInt)
	fn := types.NewFunc(types.TypeInt, []*types.Type{a, b})

	assert.Same(t, a, fn.ParamTypes)
	assert.Same(t, b, fn.ParamTypes.NextParamType)
	assert.Nil(t, fn.ParamTypes.NextParamType.NextParamType)
}
