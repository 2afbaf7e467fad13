// Package picker shows an interactive arrow-key menu.
//
// It complements prompt.Selection: where Selection displays the choices
// inline and reads a free-form line, picker takes over the terminal
// with a navigable, filterable list and returns exactly one of the
// offered options (or a cancellation).
//
//	res, err := picker.Pick("Choose a fruit", []string{"apples", "bananas"})
//	if err != nil || res.Cancelled {
//	    return
//	}
//	fmt.Println("picked", res.Value)
package picker
