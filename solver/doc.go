// Package solver searches change-gear trains that approximate a metric
// thread pitch on a lathe with an inch leadscrew.
//
// 🚀 How it works
//
//	A train is k driver/driven pairs in series. Its ratio is
//	product(driven)/product(driving), and the pitch it cuts is
//
//	    pitchMM = 25.4 / lead / ratio
//
//	where lead is the leadscrew in threads (revolutions) per inch.
//	For every k in 1..MaxReductions the solver draws each 2k-subset of the
//	inventory, seats every half of it as drivers, scores the train by its
//	absolute percent pitch error and offers it to a fixed-size Collector
//	that keeps the best ShowBestCount trains.
//
// ✨ Modes:
//   - SolveAvailable     — only the gears in the inventory.
//   - SolveAvailablePlus — the inventory plus one extra gear of any size in
//     MinExtraGearTeeth..MaxGearTeeth, ranked together in one Collector.
//
// Determinism:
//
//	Enumeration order is fixed (see package combin) and ties keep the train
//	found first, so repeated runs return identical rankings. The parallel
//	plus-mode (WithParallelism) merges per-size rankings in ascending size
//	order and yields the same list as the sequential pass.
//
// Errors:
//
//	Config is expected to be validated by the caller. The only returned
//	error is cancellation of the context, checked between outer iterations.
//	Broken internal contracts (mismatched train lengths, a non-positive
//	collector capacity) panic with the sentinels from types.go.
//
// Complexity:
//
//	Σ_k C(n,2k)·C(2k,k) candidates for an inventory of n gears; each costs
//	O(k) to evaluate and O(N) to rank when it beats the current worst.
package solver
