package teams

// Column keys a Team exposes to the page renderer.
const (
	FieldCode = "code"
	FieldCity = "city"
	FieldName = "name"
	FieldLogo = "logo"
)

// Team represents a club as loaded from the static teams source.
// Code is the unique key that standings reference.
type Team struct {
	Code string `json:"code" validate:"required"`
	City string `json:"city" validate:"required"`
	Name string `json:"name" validate:"required"`
	Logo string `json:"logo" validate:"required"`
}

// Field returns the value for a column key.
func (t Team) Field(key string) (string, bool) {
	switch key {
	case FieldCode:
		return t.Code, true
	case FieldCity:
		return t.City, true
	case FieldName:
		return t.Name, true
	case FieldLogo:
		return t.Logo, true
	default:
		return "", false
	}
}
