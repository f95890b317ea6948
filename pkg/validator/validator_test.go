package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sample struct {
	Name  string `json:"name" validate:"notblank"`
	Email string `json:"email" validate:"required"`
	Price *int64 `json:"price" validate:"required,min=0"`
}

func TestValidateStructReportsJSONNames(t *testing.T) {
	errs := ValidateStruct(&sample{Name: "   "})

	fields := make([]string, len(errs))
	for i, e := range errs {
		fields[i] = e.FailedField
	}
	assert.Equal(t, []string{"name", "email", "price"}, fields)
	assert.Equal(t, "notblank", errs[0].Tag)
}

func TestValidateStructPointerZeroIsPresent(t *testing.T) {
	zero := int64(0)
	assert.Empty(t, ValidateStruct(&sample{Name: "a", Email: "b", Price: &zero}))

	negative := int64(-1)
	errs := ValidateStruct(&sample{Name: "a", Email: "b", Price: &negative})
	if assert.Len(t, errs, 1) {
		assert.Equal(t, "min", errs[0].Tag)
		assert.Equal(t, "0", errs[0].Value)
		assert.Equal(t, "price failed on min=0", errs[0].String())
	}
}
