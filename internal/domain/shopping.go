package domain

import (
	"fmt"
	"strings"
	"time"
)

// ShoppingListFooter is always the last line of a rendered shopping list.
const ShoppingListFooter = "Enjoy your lunch :)"

// CartRecipe is one shopping cart entry with the ingredients of its recipe
// in stored order.
type CartRecipe struct {
	RecipeID    int64
	Ingredients []RecipeIngredient
}

// ShoppingItem is one aggregated line of a shopping list.
type ShoppingItem struct {
	Name   string
	Amount int
	Unit   string
}

// ShoppingList is an ordered list of aggregated ingredients.
type ShoppingList []ShoppingItem

// AggregateShoppingList collapses the ingredients of every cart entry into one
// list keyed by ingredient name. Amounts with the same unit are summed; an
// occurrence with a different unit replaces the stored amount and unit.
// Items keep the position where their name was first seen.
func AggregateShoppingList(entries []CartRecipe) ShoppingList {
	index := make(map[string]int)
	var list ShoppingList

	for _, e := range entries {
		for _, ing := range e.Ingredients {
			i, ok := index[ing.Name]
			if !ok {
				index[ing.Name] = len(list)
				list = append(list, ShoppingItem{Name: ing.Name, Amount: ing.Amount, Unit: ing.MeasurementUnit})
				continue
			}
			if list[i].Unit == ing.MeasurementUnit {
				list[i].Amount += ing.Amount
			} else {
				list[i].Amount = ing.Amount
				list[i].Unit = ing.MeasurementUnit
			}
		}
	}

	return list
}

// Render formats the list as plain text, one "name: amount unit." line per
// item, followed by the footer line.
func (l ShoppingList) Render() string {
	lines := make([]string, 0, len(l)+1)
	for _, it := range l {
		lines = append(lines, fmt.Sprintf("%s: %d %s.", it.Name, it.Amount, it.Unit))
	}
	lines = append(lines, ShoppingListFooter)
	return strings.Join(lines, "\n")
}

// ShoppingListFilename returns the download name of a list generated at t.
func ShoppingListFilename(t time.Time) string {
	return "shopping_list_" + t.UTC().Format("20060102_150405") + ".txt"
}
