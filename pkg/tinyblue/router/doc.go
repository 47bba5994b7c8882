// Package router provides path-keyed screen registration and the navigation
// stack behind a menu.
//
// The bottom of the stack is the screen registered at the root path and is
// never popped. Opening a path pushes its screen; going back pops the top.
//
// # Basic Usage
//
//	r := router.New[*Menu]("/")
//
//	r.Register("/settings", settingsMenu)
//	r.Register("/", mainMenu) // registering the root resets the stack
//
//	r.Open("/settings")       // stack: /, /settings
//	r.Open("/missing")        // unknown paths are ignored
//
//	if entry := r.Back(); entry != nil {
//	    // entry.Screen is the menu that was just closed
//	}
//
// The same screen value is shared between the registry and every stack entry
// that refers to it, so state kept inside a screen survives pushes.
package router
