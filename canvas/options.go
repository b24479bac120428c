package canvas

// Option configures a Context during creation.
//
//	cc := canvas.NewContext(800, 600, canvas.WithFontBook(book))
type Option func(*contextOptions)

type contextOptions struct {
	fonts *FontBook
}

func defaultOptions() contextOptions {
	return contextOptions{
		fonts: nil, // DefaultFontBook is used if nil
	}
}

// WithFontBook sets the FontBook used to resolve font families.
func WithFontBook(b *FontBook) Option {
	return func(o *contextOptions) {
		o.fonts = b
	}
}
