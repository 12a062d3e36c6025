// Package organize walks library folders and writes their tag sidecars,
// note and playlist.
//
// Each folder is handled in two steps. Plan lists the folder once and
// computes every file's content; Apply writes them with whole-file
// overwrites. Running twice over unchanged folders produces identical files.
//
//	manager := organize.NewManager(config.DefaultSettings(), func(e organize.ProgressEvent) {
//	    fmt.Println(e.Message)
//	})
//	outcomes, err := manager.Organize(ctx, []string{"/rips/Foo Game (2003-05-01)"})
//
// Inputs that are not directories are skipped, as are track folders without
// payload files. A track folder whose name lacks " - " aborts the run with
// an error wrapping model.ErrMissingSeparator.
package organize
