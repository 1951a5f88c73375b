package demo

import (
	"fmt"
	"maps"
	"slices"
	"strings"
)

// Collections shows a fixed array, an edited slice and a map.
func (r *Runner) Collections() {
	r.console.Header("3. Arrays and Collections")

	fruitsArray := [3]string{"Apple", "Banana", "Cherry"}
	r.console.Print("Array: ")
	for _, fruit := range fruitsArray {
		r.console.Print(fruit + " ")
	}
	r.console.Println()

	fruitList := BuildFruitList()
	r.console.Println("Slice: " + FormatList(fruitList))
	r.console.Printf("Size of slice: %d\n", len(fruitList))
	r.console.Printf("Element at index 0: %s\n", fruitList[0])

	inventory := BuildInventory()
	r.console.Println("Map: " + FormatInventory(inventory))
	r.console.Printf("Number of Apples: %d\n", inventory["Apples"])
	r.console.Println()
}

// BuildFruitList appends three fruits, overwrites index 2, removes "Banana"
// by value and inserts "Blueberry" at index 1.
func BuildFruitList() []string {
	var fruits []string
	fruits = append(fruits, "Apple")
	fruits = append(fruits, "Banana")
	fruits = append(fruits, "Cherry")
	fruits[2] = "Cherry"
	fruits = RemoveValue(fruits, "Banana")
	fruits = slices.Insert(fruits, 1, "Blueberry")
	return fruits
}

// RemoveValue drops the first element equal to v. The slice is returned
// unchanged when v is absent.
func RemoveValue(list []string, v string) []string {
	i := slices.Index(list, v)
	if i < 0 {
		return list
	}
	return slices.Delete(list, i, i+1)
}

// FormatList renders a list as "[a, b, c]".
func FormatList(list []string) string {
	return "[" + strings.Join(list, ", ") + "]"
}

// BuildInventory returns fruit counts keyed by name.
func BuildInventory() map[string]int {
	inventory := make(map[string]int)
	inventory["Apples"] = 50
	inventory["Oranges"] = 25
	inventory["Bananas"] = 40
	return inventory
}

// FormatInventory renders counts as "{Apples=50, Bananas=40, Oranges=25}",
// keys in sorted order.
func FormatInventory(inventory map[string]int) string {
	parts := make([]string, 0, len(inventory))
	for _, name := range slices.Sorted(maps.Keys(inventory)) {
		parts = append(parts, fmt.Sprintf("%s=%d", name, inventory[name]))
	}
	return "{" + strings.Join(parts, ", ") + "}"
}
