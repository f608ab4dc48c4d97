package bfvm

// Options are the machine settings shared by both back ends.
type Options struct {
	TapeSize int
	Bounds   BoundsPolicy
	Output   OutputMode
}

func DefaultOptions() Options {
	return Options{
		TapeSize: DefaultTapeSize,
		Bounds:   BoundsError,
		Output:   OutputASCII,
	}
}
