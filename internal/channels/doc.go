// Package channels identifies subscribed channels.
//
// Channel links appear in many forms (absolute URLs, relative paths, JSON
// escaped paths inside inline scripts). NormalizeHref reduces each of them to
// a canonical lowercase path such as "/@handle" or "/channel/<id>" so that
// card links can be compared with the subscription set.
package channels
