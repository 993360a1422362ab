package repository

import "time"

type Product struct {
	ProductNo int64     `json:"product_no"`
	Title     string    `json:"title"`
	Price     float64   `json:"price"`
	Text      string    `json:"text"`
	ImgURL    *string   `json:"imgurl"`
	Category  string    `json:"category"`
	Date      time.Time `json:"date"`
}

type Category struct {
	ID       int64  `json:"id"`
	Category string `json:"category"`
}
