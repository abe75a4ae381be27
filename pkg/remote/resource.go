package remote

// ResourceType selects which path segment a content-addressed URL is
// built under.
type ResourceType int

const (
	ResourceData ResourceType = iota
	ResourceConfig
	ResourcePatch
)

func (t ResourceType) pathSegment() string {
	switch t {
	case ResourceData:
		return "data"
	case ResourceConfig:
		return "config"
	case ResourcePatch:
		return "patch"
	default:
		return ""
	}
}
