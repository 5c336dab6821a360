// Package engine drives the bar visualizer one tick at a time.
//
// An [Engine] starts Uninitialized. [Engine.Setup] validates a
// [bars.Config], obtains a surface from the host and moves the engine to
// Running. Each [Engine.Tick] then runs the pipeline
//
//	generate targets -> smooth heights -> render -> observe metrics
//
// over the whole bar array. Tick on an Uninitialized engine does nothing.
//
// # Example
//
//	eng := engine.New(amplitude.NewWave(5, 180), smoothing.NewExponential(0.3), render.New(grad))
//	if err := eng.Setup(host, cfg); err != nil {
//	    return err
//	}
//	for range time.Tick(cfg.TickInterval) {
//	    eng.Tick()
//	}
//
// # Thread Safety
//
// Engine instances are NOT thread-safe. Tick must be driven by exactly one
// scheduler, and the bar slice returned by [Engine.Bars] must only be read
// from that same goroutine.
package engine
