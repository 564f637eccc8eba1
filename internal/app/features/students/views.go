// internal/app/features/students/views.go
package students

import (
	"github.com/dalemusser/gardenadmin/internal/app/system/format"
	"github.com/dalemusser/gardenadmin/internal/app/system/listfilter"
	"github.com/dalemusser/gardenadmin/internal/app/system/panel"
	"github.com/dalemusser/gardenadmin/internal/domain/models"
)

const EmptyMessage = "No students found"

// Filter searches the name and the register number.
func Filter(items []models.Student, q string) []models.Student {
	return listfilter.Search(items, q,
		func(s models.Student) string { return s.Name },
		func(s models.Student) string { return s.RegisterNumber },
	)
}

type Card struct {
	RegisterNumber string
	Name           string
	TotalReports   int
	LastActive     string
}

type ListView struct {
	Cards       []Card
	Placeholder *panel.Placeholder
	Query       string
}

// BuildList filters the snapshot and renders it.
func BuildList(p panel.Panel[models.Student], q string) ListView {
	items := Filter(p.Items, q)
	v := ListView{Query: q}
	if v.Placeholder = panel.For(p, items, EmptyMessage); v.Placeholder != nil {
		return v
	}
	for _, s := range items {
		v.Cards = append(v.Cards, Card{
			RegisterNumber: s.RegisterNumber,
			Name:           s.Name,
			TotalReports:   s.TotalReports,
			LastActive:     format.DateTime(models.ParseTime(s.LastActive), "Never"),
		})
	}
	return v
}
