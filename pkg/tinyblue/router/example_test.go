package router_test

import (
	"fmt"

	"github.com/BrandonKowalski/tinyblue/pkg/tinyblue/router"
)

type menu struct {
	title string
}

// Example demonstrates registering screens and walking the stack.
func Example() {
	r := router.New[*menu]("/")

	r.Register("/about", &menu{title: "About"})
	r.Register("/", &menu{title: "Main"})

	fmt.Println(r.Current().Screen.title)

	r.Open("/about")
	fmt.Println(r.Current().Screen.title, r.Stack().Len())

	// Unknown paths leave the stack alone
	r.Open("/missing")
	fmt.Println(r.Stack().Paths())

	if entry := r.Back(); entry != nil {
		fmt.Println("closed", entry.Screen.title)
	}

	// The root is never popped
	fmt.Println(r.Back() == nil, r.Current().Path)

	// Output:
	// Main
	// About 2
	// [/ /about]
	// closed About
	// true /
}

// Example_reRegisterRoot demonstrates that registering the root resets navigation.
func Example_reRegisterRoot() {
	r := router.New[string]("/")
	r.Register("/", "main")
	r.Register("/led", "led")
	r.Open("/led")
	r.Open("/led")
	fmt.Println(r.Stack().Paths())

	r.Register("/", "main v2")
	fmt.Println(r.Stack().Paths(), r.Current().Screen)

	// Output:
	// [/ /led /led]
	// [/] main v2
}
