package renderer

import (
	"html/template"

	"github.com/mannancrackers/shop/app/helpers"
	"github.com/mannancrackers/shop/app/models"
	"github.com/mannancrackers/shop/app/utils/format"
	"github.com/unrolled/render"
)

// New builds the renderer every HTML handler shares, with the template
// helpers the pages rely on. Templates are read from ./templates, so the
// server runs from the repository root.
func New() *render.Render {
	return NewWithDir("templates")
}

// NewWithDir is New with an explicit template directory, for callers that
// do not run from the repository root.
func NewWithDir(directory string) *render.Render {
	return render.New(render.Options{
		Directory:  directory,
		Layout:     "layout",
		Extensions: []string{".html"},
		Funcs: []template.FuncMap{
			{
				"until": func(count int) []int {
					items := make([]int, count)
					for i := 0; i < count; i++ {
						items[i] = i
					}
					return items
				},
				"add": func(a, b int) int { return a + b },
				"sub": func(a, b int) int { return a - b },
				"min": func(a, b int) int {
					if a < b {
						return a
					}
					return b
				},
				"max": func(a, b int) int {
					if a > b {
						return a
					}
					return b
				},
				"formatMoney":    format.INR,
				"statusLabel":    models.OrderStatus.Label,
				"statusColor":    helpers.StatusColor,
				"shippingStatus": helpers.GetShippingStatus,
			},
		},
	})
}
