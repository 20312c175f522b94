// Package lathegears picks change gears for cutting metric threads on a
// lathe with an inch leadscrew.
//
// 🚀 What is it?
//
//	Given the gears in the drawer, the leadscrew lead and a target pitch,
//	lathegears tries every driver/driven arrangement up to a number of
//	reduction stages and ranks them by pitch error. It can also tell you
//	which single extra gear would help most.
//
// ✨ Packages:
//
//	combin/  — k-subsets and balanced splits, lazy and deterministic
//	solver/  — ratio evaluation, best-N ranking, exhaustive search
//	config/  — YAML lathe description + .env / CHANGEGEARS_* overrides
//	report/  — text, YAML and JSON rendering
//	session/ — multi-pitch queries with a memo cache
//	logx/    — leveled logging over the standard log package
//	cmd/changegears — the command line tool
//
// Quick example:
//
//	s := solver.NewSolver(solver.Config{
//	    AvailableGears: []int{20, 40, 60, 127},
//	    MaxReductions:  1,
//	    Lead:           8, // 8 TPI
//	    ShowBestCount:  3,
//	})
//	best, _ := s.SolveAvailable(ctx, 1.5) // 60 → 127 cuts exactly 1.5 mm
//
//	go install github.com/katalvlaran/lathegears/cmd/changegears@latest
package lathegears
