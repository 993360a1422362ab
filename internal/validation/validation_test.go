package validation_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/sonuudigital/microservices/catalog-service/internal/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeProduct(t *testing.T, body string) validation.ProductInput {
	t.Helper()
	var in validation.ProductInput
	require.NoError(t, json.Unmarshal([]byte(body), &in))
	return in
}

func fields(errs []validation.FieldError) []string {
	out := make([]string, len(errs))
	for i, e := range errs {
		out[i] = e.Field
	}
	return out
}

func TestFieldUnmarshal(t *testing.T) {
	in := decodeProduct(t, `{"title":"Chair","price":null,"text":12}`)

	assert.True(t, in.Title.Present)
	assert.True(t, in.Title.Set())
	assert.True(t, in.Price.Present)
	assert.False(t, in.Price.Set())
	assert.False(t, in.Category.Present)

	n, ok := in.Text.Number()
	assert.True(t, ok)
	assert.Equal(t, float64(12), n)
}

func TestValidateProductValid(t *testing.T) {
	cases := map[string]string{
		"full":          `{"title":"Chair","price":49,"text":"Wooden chair","imgurl":"/img/chair.png","category":"Furniture"}`,
		"without image": `{"title":"Chair","price":0,"text":"Wooden chair","category":"Furniture"}`,
		"max lengths":   `{"title":"` + strings.Repeat("t", 128) + `","price":1.5,"text":"` + strings.Repeat("x", 512) + `","category":"` + strings.Repeat("c", 128) + `"}`,
	}

	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Empty(t, validation.ValidateProduct(decodeProduct(t, body), true))
		})
	}
}

func TestValidateProductInvalidFields(t *testing.T) {
	cases := []struct {
		name  string
		body  string
		field string
	}{
		{"empty title", `{"title":""}`, validation.FieldTitle},
		{"long title", `{"title":"` + strings.Repeat("t", 129) + `"}`, validation.FieldTitle},
		{"numeric title", `{"title":5}`, validation.FieldTitle},
		{"negative price", `{"price":-1}`, validation.FieldPrice},
		{"string price", `{"price":"49"}`, validation.FieldPrice},
		{"empty text", `{"text":""}`, validation.FieldText},
		{"long text", `{"text":"` + strings.Repeat("x", 513) + `"}`, validation.FieldText},
		{"numeric imgurl", `{"imgurl":3}`, validation.FieldImgURL},
		{"empty category", `{"category":""}`, validation.FieldCategory},
		{"long category", `{"category":"` + strings.Repeat("c", 129) + `"}`, validation.FieldCategory},
		{"object category", `{"category":{"name":"x"}}`, validation.FieldCategory},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			errs := validation.ValidateProduct(decodeProduct(t, tc.body), false)
			assert.Equal(t, []string{tc.field}, fields(errs))
		})
	}
}

func TestValidateProductCreateRequiresFields(t *testing.T) {
	errs := validation.ValidateProduct(decodeProduct(t, `{"title":"Chair","price":49,"text":"Wooden chair"}`), true)

	require.Len(t, errs, 1)
	assert.Equal(t, validation.FieldGeneric, errs[0].Field)
}

func TestValidateProductNullCountsAsPresent(t *testing.T) {
	errs := validation.ValidateProduct(decodeProduct(t, `{"title":null,"price":null,"text":null,"category":null}`), true)

	assert.Empty(t, errs)
}

func TestValidateProductAccumulatesErrors(t *testing.T) {
	errs := validation.ValidateProduct(decodeProduct(t, `{"title":"","price":-5,"text":"ok","category":7}`), true)

	assert.Equal(t, []string{validation.FieldTitle, validation.FieldPrice, validation.FieldCategory}, fields(errs))
	for _, e := range errs {
		assert.NotEmpty(t, e.Message)
	}
}

func TestValidateProductUpdateAllowsEmptyInput(t *testing.T) {
	assert.Empty(t, validation.ValidateProduct(validation.ProductInput{}, false))
}

func TestValidateProductCountsUTF16Units(t *testing.T) {
	t.Run("BMP Characters Count Once", func(t *testing.T) {
		in := validation.ProductInput{Title: validation.Value(strings.Repeat("þ", 128))}
		assert.Empty(t, validation.ValidateProduct(in, false))
	})

	t.Run("Astral Characters Count Twice", func(t *testing.T) {
		in := validation.ProductInput{Title: validation.Value(strings.Repeat("😀", 64))}
		assert.Empty(t, validation.ValidateProduct(in, false))

		in = validation.ProductInput{Title: validation.Value(strings.Repeat("😀", 65))}
		assert.Equal(t, []string{validation.FieldTitle}, fields(validation.ValidateProduct(in, false)))
	})

	t.Run("Text Limit", func(t *testing.T) {
		in := validation.ProductInput{Text: validation.Value(strings.Repeat("😀", 256))}
		assert.Empty(t, validation.ValidateProduct(in, false))

		in = validation.ProductInput{Text: validation.Value(strings.Repeat("😀", 256) + "x")}
		assert.Equal(t, []string{validation.FieldText}, fields(validation.ValidateProduct(in, false)))
	})

	t.Run("Category Limit", func(t *testing.T) {
		errs := validation.ValidateCategory(validation.CategoryInput{Category: validation.Value(strings.Repeat("😀", 65))})
		assert.Equal(t, []string{validation.FieldCategory}, fields(errs))
	})
}

func TestValidateCategory(t *testing.T) {
	assert.Empty(t, validation.ValidateCategory(validation.CategoryInput{Category: validation.Value("Furniture")}))

	errs := validation.ValidateCategory(validation.CategoryInput{Category: validation.Value("")})
	assert.Equal(t, []string{validation.FieldCategory}, fields(errs))

	assert.Empty(t, validation.ValidateCategory(validation.CategoryInput{}))
}

func TestCategoryNameRequired(t *testing.T) {
	errs := validation.CategoryNameRequired()
	require.Len(t, errs, 1)
	assert.Equal(t, validation.FieldCategory, errs[0].Field)
}

func TestMissingRequired(t *testing.T) {
	errs := validation.MissingRequired()
	require.Len(t, errs, 1)
	assert.Equal(t, validation.FieldGeneric, errs[0].Field)
}
