// Package cover holds the article cover selection state machine.
//
// A cover is displayed in one of three modes: no image, a single image, or a
// triple image strip. The selector keeps every image added during an editing
// session in a buffer and derives the active display list from it, so
// switching modes back and forth never loses previously uploaded images.
package cover

import "fmt"

// Type is the cover presentation mode. Its numeric value is also the number
// of images the mode carries, which is why Triple is 3 and not 2.
type Type int

const (
	None   Type = 0
	Single Type = 1
	Triple Type = 3
)

// ParseType validates a numeric cover type.
func ParseType(n int) (Type, error) {
	switch Type(n) {
	case None, Single, Triple:
		return Type(n), nil
	}
	return None, fmt.Errorf("invalid cover type %d (must be 0, 1, or 3)", n)
}

func (t Type) String() string {
	switch t {
	case None:
		return "none"
	case Single:
		return "single"
	case Triple:
		return "triple"
	}
	return fmt.Sprintf("type(%d)", int(t))
}

// Image is one uploaded-image descriptor. URL is set when the image was part
// of a persisted article; UploadURL is set when the image was uploaded during
// this session. Both may be present after an edit round trip.
type Image struct {
	URL       string
	UploadURL string
}

// ResolveURL reconciles the two representations into a plain URL string,
// preferring the fresh upload response.
func (img Image) ResolveURL() string {
	if img.UploadURL != "" {
		return img.UploadURL
	}
	return img.URL
}

// MismatchError reports a cover type whose image count does not line up at
// submission time.
type MismatchError struct {
	Type  Type
	Count int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("cover type %s expects %d image(s), have %d", e.Type, int(e.Type), e.Count)
}

// Selector tracks the cover mode plus two image lists: buffer holds every
// image added this session, display the subset the active mode shows and
// submits. Display is always a prefix of buffer, no longer than the mode's
// image count.
type Selector struct {
	coverType Type
	buffer    []Image
	display   []Image
}

// NewSelector starts an empty selector in the given mode.
func NewSelector(t Type) *Selector {
	return &Selector{coverType: t}
}

// Type returns the active cover mode.
func (s *Selector) Type() Type {
	return s.coverType
}

// Display returns the images the active mode currently shows.
func (s *Selector) Display() []Image {
	out := make([]Image, len(s.display))
	copy(out, s.display)
	return out
}

// Buffer returns every image added this session.
func (s *Selector) Buffer() []Image {
	out := make([]Image, len(s.buffer))
	copy(out, s.buffer)
	return out
}

// SetImages replaces both the buffer and the display list. Uploads always go
// through the active mode, so the two move together.
func (s *Selector) SetImages(list []Image) {
	s.buffer = append([]Image(nil), list...)
	s.display = append([]Image(nil), list...)
}

// SetType switches the cover mode and re-derives the display list from the
// buffer. The buffer itself is never touched by a mode switch.
func (s *Selector) SetType(t Type) {
	s.coverType = t
	switch t {
	case None:
		s.display = nil
	case Single:
		if len(s.buffer) > 0 {
			s.display = []Image{s.buffer[0]}
		} else {
			s.display = nil
		}
	case Triple:
		n := len(s.buffer)
		if n > 3 {
			n = 3
		}
		s.display = append([]Image(nil), s.buffer[:n]...)
	}
}

// LoadExisting initializes the selector from a persisted article's cover.
// The upstream data is trusted: no count/type validation happens at load
// time, only at submission.
func (s *Selector) LoadExisting(t Type, urls []string) {
	s.coverType = t
	imgs := make([]Image, len(urls))
	for i, u := range urls {
		imgs[i] = Image{URL: u}
	}
	s.buffer = imgs
	s.display = append([]Image(nil), imgs...)
}

// Validate checks the submission-time invariant: the display count must
// equal the cover type's numeric value.
func (s *Selector) Validate() error {
	if len(s.display) != int(s.coverType) {
		return &MismatchError{Type: s.coverType, Count: len(s.display)}
	}
	return nil
}

// URLs returns the display list as plain URL strings in order, each image
// reconciled to its upload-response URL or its pre-existing one.
func (s *Selector) URLs() []string {
	urls := make([]string, len(s.display))
	for i, img := range s.display {
		urls[i] = img.ResolveURL()
	}
	return urls
}
