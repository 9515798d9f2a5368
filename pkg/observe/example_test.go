package observe_test

import (
	"fmt"

	"github.com/go-drift/observe/pkg/observe"
)

// This example shows how a record reports field changes.
func ExampleRecord() {
	user := observe.NewRecord(map[string]any{"name": "Ada", "age": 36})

	off := user.OnAny(func(field string, value, prev any) {
		fmt.Printf("%s: %v -> %v\n", field, prev, value)
	})

	user.Set("age", 37)

	// Clean up when done
	off()
	user.Set("age", 38) // no output

	// Output:
	// age: 36 -> 37
}

// This example shows sorted insertion with add events.
func ExampleCollection() {
	scores := observe.NewSortedCollection(func(a, b int) int { return a - b })

	scores.OnAdd(func(item, index int) {
		fmt.Printf("added %d at %d\n", item, index)
	})

	scores.Add(1)
	scores.Add(3)
	scores.Add(2)

	fmt.Println(scores.Items())

	// Output:
	// added 1 at 0
	// added 3 at 1
	// added 2 at 1
	// [1 2 3]
}

// This example shows how item field changes surface as collection events
// carrying the item's current index.
func ExampleCollection_change() {
	byX := func(a, b *observe.Record) int {
		av, _ := a.Get("x")
		bv, _ := b.Get("x")
		return av.(int) - bv.(int)
	}

	a := observe.NewRecord(map[string]any{"x": 1})
	b := observe.NewRecord(map[string]any{"x": 2})
	items := observe.NewSortedCollection(byX, a, b)

	items.OnChange(func(item *observe.Record, index int, field string, value, prev any) {
		fmt.Printf("item %d: %s = %v\n", index, field, value)
	})

	a.Set("x", 10) // a is still first until the next sort
	items.Sort()
	a.Set("x", 11) // a has moved behind b

	items.Dispose()

	// Output:
	// item 0: x = 10
	// item 1: x = 11
}

// This example shows persisting a record's fields as YAML.
func ExampleRecord_Snapshot() {
	settings := observe.NewRecord(map[string]any{"volume": 7, "muted": false})

	data, err := settings.Snapshot()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(string(data))

	// Output:
	// muted: false
	// volume: 7
}
