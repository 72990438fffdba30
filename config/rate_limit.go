package config

// Rate limit configuration
type RateLimitConfig struct {
	Rate      int `env:"RATE" envDefault:"6000"`     // Requests refilled per minute
	Burst     int `env:"BURST" envDefault:"600"`     // Burst capacity
	VoteRate  int `env:"VOTE_RATE" envDefault:"30"`  // Vote requests refilled per minute
	VoteBurst int `env:"VOTE_BURST" envDefault:"10"` // Vote burst capacity
}
