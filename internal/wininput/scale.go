package wininput

// scaleAbsolute maps a pixel on a span starting at origin to the 0..65535 absolute range.
func scaleAbsolute(v, origin, span int) int32 {
	if span <= 1 {
		span = 2
	}
	return int32((int64(v) - int64(origin)) * 65535 / int64(span-1))
}
