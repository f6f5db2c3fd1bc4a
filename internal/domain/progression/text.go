package progression

// Greeting hour boundaries (24h clock).
const (
	morningStart   = 5
	afternoonStart = 12
	eveningStart   = 17
	eveningEnd     = 21
)

// Greeting returns the time-of-day greeting for an hour on the 24h clock.
// The caller supplies the hour so the engine never reads a clock itself.
func (e *Engine) Greeting(hour int) string {
	switch {
	case hour >= morningStart && hour < afternoonStart:
		return "Good morning"
	case hour >= afternoonStart && hour < eveningStart:
		return "Good afternoon"
	case hour >= eveningStart && hour < eveningEnd:
		return "Good evening"
	default:
		return "Hello"
	}
}

// Homework motivation bands. Enthusiasm strictly increases with the count.
const (
	motivationFew  = 5
	motivationSome = 10
	motivationMany = 25
	motivationLots = 50
	motivationTon  = 100
)

// HomeworkMotivation returns the encouragement line for a completed-homework
// count. Negative counts are treated as zero.
func (e *Engine) HomeworkMotivation(count int) string {
	switch {
	case count <= 0:
		return "Let's get started on your first homework!"
	case count < motivationFew:
		return "Nice start! Keep it up!"
	case count < motivationSome:
		return "You're building a great habit!"
	case count < motivationMany:
		return "Impressive dedication!"
	case count < motivationLots:
		return "Wow, you're a homework star!"
	case count < motivationTon:
		return "Incredible! You're unstoppable!"
	default:
		return "Legendary! 100+ homework completed!"
	}
}
