package entity

// Category representa una categoría de artículos.
type Category struct {
	ID   string
	Name string
}
