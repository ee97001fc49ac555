// Package nav is the navigation data model of a documentation site: the top
// navigation bar, the sidebar tree and the social links, together with the
// validation that turns hand-written raw data into an immutable Site.
//
// Build never stops at the first problem. Every violation is collected with the
// location of the offending entry (for example "sidebar[4]" or
// "sidebar[1].items[0]") so one run reports everything an author has to fix.
// Sites are immutable once built; callers that rebuild on change replace their
// reference to the Site instead of mutating it.
package nav
