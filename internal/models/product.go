// internal/models/product.go
package models

// Product is a sellable catalog listing. Products are immutable once
// created: there is no update path, an edit is a delete followed by a
// recreate.
type Product struct {
	BaseModel
	Title       string  `json:"title" gorm:"size:255;not null"`
	Description string  `json:"description" gorm:"type:text;not null"`
	Price       float64 `json:"price" gorm:"type:decimal(10,2);not null"`
	Category    string  `json:"category" gorm:"size:100;index"`
	DownloadKey string  `json:"-" gorm:"size:255"`
}

var categoryLabels = map[string]string{
	"presets": "AE Text Presets",
	"topaz":   "Topaz Quality",
	"export":  "Export Settings",
}

// CategoryLabel returns the storefront label for known category tags.
// Unrecognized tags are returned verbatim.
func (p *Product) CategoryLabel() string {
	if label, ok := categoryLabels[p.Category]; ok {
		return label
	}
	return p.Category
}
