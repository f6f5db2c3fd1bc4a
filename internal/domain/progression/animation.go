package progression

// Animation identifies a character animation.
type Animation string

const (
	AnimationIdle   Animation = "idle"
	AnimationDance  Animation = "dance"
	AnimationWave   Animation = "wave"
	AnimationWai    Animation = "wai" // Thai greeting gesture
	AnimationCurtsy Animation = "curtsy"
	AnimationBow    Animation = "bow"
)

// nonIdleAnimations is the pool RandomAnimation picks from. Idle is excluded
// by construction rather than by filtering.
var nonIdleAnimations = [...]Animation{
	AnimationDance,
	AnimationWave,
	AnimationWai,
	AnimationCurtsy,
	AnimationBow,
}

// Animations returns the non-idle animation set in a fixed order.
func Animations() []Animation {
	out := make([]Animation, len(nonIdleAnimations))
	copy(out, nonIdleAnimations[:])
	return out
}

// ParseAnimation converts a wire string to an Animation.
// Unknown names report false.
func ParseAnimation(s string) (Animation, bool) {
	switch Animation(s) {
	case AnimationIdle, AnimationDance, AnimationWave, AnimationWai, AnimationCurtsy, AnimationBow:
		return Animation(s), true
	default:
		return "", false
	}
}

// RandomAnimation picks uniformly from the non-idle animations using the
// engine's randomness source. The source is guarded, so concurrent callers
// are safe.
func (e *Engine) RandomAnimation() Animation {
	e.rngMu.Lock()
	defer e.rngMu.Unlock()
	return nonIdleAnimations[e.rng.Intn(len(nonIdleAnimations))]
}

// AnimationHappinessBonus returns the happiness granted for playing an
// animation. Only dancing cheers the character up.
func (e *Engine) AnimationHappinessBonus(a Animation) float64 {
	if a == AnimationDance {
		return e.danceBonus
	}
	return 0
}
