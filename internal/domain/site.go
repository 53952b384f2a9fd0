package domain

type Site string

func (s Site) String() string {
	return string(s)
}

const (
	SiteRakuten Site = "rakuten" // Rakuten Ichiba
	SiteYahoo   Site = "yahoo"   // Yahoo! Shopping
)

var Sites = []Site{
	SiteRakuten,
	SiteYahoo,
}

func (s Site) GetSiteName() string {
	switch s {
	case SiteRakuten:
		return "Rakuten Ichiba"
	case SiteYahoo:
		return "Yahoo! Shopping"
	default:
		return "Unknown"
	}
}

// IsValid reports whether s is one of the supported storefronts.
func (s Site) IsValid() bool {
	for _, known := range Sites {
		if s == known {
			return true
		}
	}
	return false
}
