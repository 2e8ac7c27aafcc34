package room

type Category string

const (
	CategorySingle Category = "single"
	CategoryDouble Category = "double"
	CategoryTwin   Category = "twin"
	CategorySuite  Category = "suite"
	CategoryDeluxe Category = "deluxe"
)

func (c Category) String() string {
	return string(c)
}

func (c Category) IsValid() bool {
	switch c {
	case CategorySingle, CategoryDouble, CategoryTwin, CategorySuite, CategoryDeluxe:
		return true
	default:
		return false
	}
}
