package shelf

import (
	"time"

	"github.com/fxrdhan/bookshelf/internal/domain"
	"github.com/google/uuid"
)

const coverBase = "https://raw.githubusercontent.com/fxrdhan/Bookshelf-App/main/default-books/cover/"

type seedBook struct {
	title      string
	author     string
	year       int
	isFavorite bool
	cover      string
}

var seedBooks = []seedBook{
	{title: "Bumi", author: "Tere Liye", year: 2014, cover: "bumi.jpg"},
	{title: "Moon", author: "Tere Liye", year: 2019, cover: "moon.jpg"},
	{title: "Matahari", author: "Tere Liye", year: 2016, cover: "matahari.jpg"},
	{title: "Nebula", author: "Tere Liye", year: 2021, cover: "nebula.jpg"},
	{title: "Bintang", author: "Tere Liye", year: 2014, cover: "bintang.jpg"},
	{title: "Ceros dan Batozar", author: "Tere Liye", year: 2019, cover: "ceros-dan-batozar.jpg"},
	{title: "Mirai", author: "Mamoru Hosoda", year: 2000, isFavorite: true, cover: "mirai.jpg"},
}

// defaultBooks builds the starter shelf shown on first launch.
func defaultBooks() []domain.Book {
	now := time.Now().Unix()
	books := make([]domain.Book, len(seedBooks))
	for i, sb := range seedBooks {
		books[i] = domain.Book{
			ID:         uuid.NewString(),
			Title:      sb.title,
			Author:     sb.author,
			Year:       sb.year,
			IsFavorite: sb.isFavorite,
			Cover:      coverBase + sb.cover,
			AddedAt:    now,
			UpdatedAt:  now,
		}
	}
	return books
}
