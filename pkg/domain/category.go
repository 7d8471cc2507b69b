package domain

type CategoryID int64

type Category struct {
	ID   CategoryID `json:"categoryID"`
	Name string     `json:"name"`
}
