package types

// BreadCrumb is a navigable link descriptor, used both for the breadcrumb
// trail above a details page and for crosslinks to related objects. The
// rendering layer translates MsgKey when Label is empty. A crumb with an
// empty Href renders as plain text instead of a link.
type BreadCrumb struct {
	Href   string `json:"href,omitempty"`
	Label  string `json:"label,omitempty"`
	MsgKey string `json:"msgKey,omitempty"`
	Eclass string `json:"eclass,omitempty"`
	Type   string `json:"type,omitempty"`
}

// LinkTo builds a crumb pointing at a path, labeled by a message key.
func LinkTo(href string, msgKey string) BreadCrumb {
	return BreadCrumb{Href: href, MsgKey: msgKey}
}

// Caption builds an inert crumb carrying only a message key, used as the
// trailing breadcrumb describing the current page.
func Caption(msgKey string) BreadCrumb {
	return BreadCrumb{MsgKey: msgKey}
}

// PathSegment builds a crosslink to a domain object, keeping its eclass and
// display subtype for type badges.
func PathSegment(href string, label string, eclass string, typ string) BreadCrumb {
	return BreadCrumb{Href: href, Label: label, Eclass: eclass, Type: typ}
}

// Inert reports whether the crumb has no navigable target.
func (b BreadCrumb) Inert() bool { return b.Href == "" }
