package prism

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// MaterialTween animates a Material's opacity or color toward a target value over time. Each Update moves the
// Material along and flags it as needing an update.
type MaterialTween struct {
	Material IMaterial
	tween    *gween.Tween
	apply    func(t float32)
	finished bool
	// OnFinish is called once, on the Update that completes the tween.
	OnFinish func()
}

// TweenOpacity creates a MaterialTween that moves the Material's Opacity from its current value to target over
// duration seconds. If easing is nil, the tween is linear.
func TweenOpacity(material IMaterial, target float64, duration float32, easing ease.TweenFunc) *MaterialTween {
	base := material.Base()
	start := float32(base.Opacity)
	return newMaterialTween(material, start, float32(target), duration, easing, func(v float32) {
		base.Opacity = float64(v)
	})
}

// TweenColor creates a MaterialTween that moves the Material's main color from its current value to target over
// duration seconds. It returns nil if the Material has no main color (see MaterialColor).
// If easing is nil, the tween is linear.
func TweenColor(material IMaterial, target *Color, duration float32, easing ease.TweenFunc) *MaterialTween {
	color := MaterialColor(material)
	if color == nil || target == nil {
		return nil
	}
	from := color.Clone()
	to := target.Clone()
	return newMaterialTween(material, 0, 1, duration, easing, func(t float32) {
		color.SetRGBA(
			from.R+(to.R-from.R)*t,
			from.G+(to.G-from.G)*t,
			from.B+(to.B-from.B)*t,
			from.A+(to.A-from.A)*t,
		)
	})
}

func newMaterialTween(material IMaterial, begin, end, duration float32, easing ease.TweenFunc, apply func(v float32)) *MaterialTween {
	if easing == nil {
		easing = ease.Linear
	}
	return &MaterialTween{
		Material: material,
		tween:    gween.New(begin, end, duration, easing),
		apply:    apply,
	}
}

// Update advances the tween by dt seconds, returning true once it's finished. Updating a finished tween does nothing.
func (mt *MaterialTween) Update(dt float32) bool {

	if mt.finished {
		return true
	}

	current, finished := mt.tween.Update(dt)
	mt.apply(current)
	mt.Material.Base().SetNeedsUpdate(true)

	if finished {
		mt.finished = true
		if mt.OnFinish != nil {
			mt.OnFinish()
		}
	}

	return finished

}

// Finished returns true if the tween has run its full duration.
func (mt *MaterialTween) Finished() bool {
	return mt.finished
}

// Reset rewinds the tween to its start, applying the starting value to the Material.
func (mt *MaterialTween) Reset() {
	mt.tween.Reset()
	mt.finished = false
	current, _ := mt.tween.Update(0)
	mt.apply(current)
}

// MaterialColor returns the main diffuse Color of the Material, or nil for kinds that don't have one
// (the base Material, MeshNormalMaterial, MeshDepthMaterial and ShaderMaterial).
func MaterialColor(material IMaterial) *Color {
	switch m := material.(type) {
	case *MeshBasicMaterial:
		return m.Color
	case *MeshLambertMaterial:
		return m.Color
	case *MeshPhongMaterial:
		return m.Color
	case *PointCloudMaterial:
		return m.Color
	case *SpriteMaterial:
		return m.Color
	}
	return nil
}
