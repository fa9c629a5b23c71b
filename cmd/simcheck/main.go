// Command simcheck is a headless stress harness for the collision world: it
// spawns increasing counts of bodies, steps the simulation a fixed number of
// ticks, and reports timing and contact statistics. No rendering is
// performed.
package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"collide3d/config"
	"collide3d/numeric"
	"collide3d/world"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config.Load: %v", err)
	}
	if err := config.Save(cfg); err != nil {
		log.Fatalf("config.Save: %v", err)
	}

	counts := []int{100, 500, 1000, 2000, 5000}
	for _, n := range counts {
		runStressCase(n, cfg)
	}
}

func runStressCase(n int, cfg config.Prefs) {
	rand.Seed(42)
	w := world.NewWorld()
	w.SetUpdateRate(cfg.UpdateRate)

	// Spawn in a cube; size scales with count to keep density reasonable.
	spawnSize := float32(50.0) + float32(n)/100.0

	for i := 0; i < n; i++ {
		body := w.CreateBody()
		b, _ := w.GetBody(body)
		b.Position = numeric.Vec3{
			X: numeric.FromFloat32(rand.Float32()*spawnSize - spawnSize/2),
			Y: numeric.FromFloat32(rand.Float32()*spawnSize - spawnSize/2),
			Z: numeric.FromFloat32(rand.Float32()*spawnSize - spawnSize/2),
		}

		group := w.AddShapeGroup(body)
		gg, _ := w.GetShapeGroup(group)
		gg.Layer, gg.Mask = 1, 1

		shape := w.AddShape(group, world.ShapeSphere)
		sh, _ := w.GetShape(shape)
		sphere, _ := w.GetSphere(sh.ShapeTypeID)
		sphere.Radius = numeric.FromFloat32(0.5 + rand.Float32()*0.5)
	}

	const ticks = 10
	start := time.Now()
	var totalContacts int
	for i := 0; i < ticks; i++ {
		w.Update()
		totalContacts += len(w.GetContacts())
	}
	elapsed := time.Since(start) / ticks

	fmt.Printf("%6d bodies: %10v/tick | %6d contacts (last tick) | %8.1f avg contacts/tick\n",
		n, elapsed.Round(time.Microsecond), len(w.GetContacts()), float64(totalContacts)/float64(ticks))
}
