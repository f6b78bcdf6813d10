package models

// Review is a submitted product review. Rating is between 1 and 5.
type Review struct {
	Name   string
	Body   string
	Rating int
}
