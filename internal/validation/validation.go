package validation

import (
	"strconv"
	"unicode/utf16"

	"github.com/go-playground/validator/v10"
)

const (
	FieldGeneric  = "error"
	FieldTitle    = "title"
	FieldPrice    = "price"
	FieldText     = "text"
	FieldImgURL   = "imgurl"
	FieldCategory = "category"

	msgMissingRequired = "A new product must include title, price, text and category"
	msgTitle           = "Title must be a string of 1 to 128 characters"
	msgPrice           = "Price must be a number greater than or equal to 0"
	msgText            = "Text must be a string of 1 to 512 characters"
	msgImgURL          = "Image URL must be a string"
	msgCategory        = "Category name must be a string of 1 to 128 characters"
)

// String lengths are counted in UTF-16 code units, so a character outside
// the Basic Multilingual Plane counts twice.
const (
	titleRule    = "u16min=1,u16max=128"
	priceRule    = "gte=0"
	textRule     = "u16min=1,u16max=512"
	categoryRule = "u16min=1,u16max=128"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("u16min", utf16Bound(func(n, limit int) bool { return n >= limit })); err != nil {
		panic(err)
	}
	if err := v.RegisterValidation("u16max", utf16Bound(func(n, limit int) bool { return n <= limit })); err != nil {
		panic(err)
	}
	return v
}

func utf16Bound(ok func(n, limit int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		limit, err := strconv.Atoi(fl.Param())
		if err != nil {
			return false
		}
		return ok(utf16Len(fl.Field().String()), limit)
	}
}

func utf16Len(s string) int {
	return len(utf16.Encode([]rune(s)))
}

type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ProductInput struct {
	Title    Field `json:"title"`
	Price    Field `json:"price"`
	Text     Field `json:"text"`
	ImgURL   Field `json:"imgurl"`
	Category Field `json:"category"`
}

type CategoryInput struct {
	Category Field `json:"category"`
}

// ValidateProduct checks every non-null field independently. In create mode a
// missing title, price, text or category adds one combined error first.
func ValidateProduct(in ProductInput, isCreate bool) []FieldError {
	errs := []FieldError{}

	if isCreate && (!in.Title.Present || !in.Price.Present || !in.Text.Present || !in.Category.Present) {
		errs = append(errs, MissingRequired()...)
	}

	if in.Title.Set() && !validString(in.Title, titleRule) {
		errs = append(errs, FieldError{Field: FieldTitle, Message: msgTitle})
	}

	if in.Price.Set() && !validPrice(in.Price) {
		errs = append(errs, FieldError{Field: FieldPrice, Message: msgPrice})
	}

	if in.Text.Set() && !validString(in.Text, textRule) {
		errs = append(errs, FieldError{Field: FieldText, Message: msgText})
	}

	if in.ImgURL.Set() {
		if _, ok := in.ImgURL.Str(); !ok {
			errs = append(errs, FieldError{Field: FieldImgURL, Message: msgImgURL})
		}
	}

	if in.Category.Set() && !validString(in.Category, categoryRule) {
		errs = append(errs, FieldError{Field: FieldCategory, Message: msgCategory})
	}

	return errs
}

func ValidateCategory(in CategoryInput) []FieldError {
	return ValidateProduct(ProductInput{Category: in.Category}, false)
}

// MissingRequired is the combined error for a product created without one of
// its required fields.
func MissingRequired() []FieldError {
	return []FieldError{{Field: FieldGeneric, Message: msgMissingRequired}}
}

// CategoryNameRequired is returned when a category is created without a name.
func CategoryNameRequired() []FieldError {
	return []FieldError{{Field: FieldCategory, Message: msgCategory}}
}

func validString(f Field, rule string) bool {
	s, ok := f.Str()
	if !ok {
		return false
	}
	return validate.Var(s, rule) == nil
}

func validPrice(f Field) bool {
	n, ok := f.Number()
	if !ok {
		return false
	}
	return validate.Var(n, priceRule) == nil
}
