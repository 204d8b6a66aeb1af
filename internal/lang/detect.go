package lang

// DefaultThreshold is the Arabic character fraction above which a text is
// classified as Arabic. Policy constant carried over from production; there
// is no ground truth to refine it against.
const DefaultThreshold = 0.3

// Detector classifies a text fragment as English or Arabic by comparing the
// number of characters in the Arabic Unicode block against ASCII alphabetic
// characters.
type Detector struct {
	Threshold float64
}

func NewDetector() *Detector {
	return &Detector{Threshold: DefaultThreshold}
}

// Detect returns "ar" when the Arabic fraction of alphabetic characters
// exceeds the threshold, otherwise "en". Empty text and text with no
// alphabetic characters of either class default to "en".
func (d *Detector) Detect(text string) string {
	if text == "" {
		return "en"
	}

	var arabic, latin int
	for _, r := range text {
		switch {
		case r >= 0x0600 && r <= 0x06FF:
			arabic++
		case (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z'):
			latin++
		}
	}

	total := arabic + latin
	if total == 0 {
		return "en"
	}

	if float64(arabic)/float64(total) > d.Threshold {
		return "ar"
	}
	return "en"
}
