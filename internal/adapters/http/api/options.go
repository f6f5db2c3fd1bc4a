package api

// Option configures the server.
type Option func(*Server)

// WithMaxBoardLimit overrides the maximum limit accepted by GET /board.
// Non-positive values are ignored.
func WithMaxBoardLimit(n int) Option {
	return func(s *Server) {
		if n > 0 {
			s.maxBoardLimit = n
		}
	}
}
