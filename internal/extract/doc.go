// Package extract finds video cards in saved listing HTML and picks the most
// plausible title for each.
//
// A card usually exposes its title several times: as link text, as a title
// attribute and inside an aria-label that also carries channel, view count
// and age metadata. Every variant is collected as a Candidate and the best
// scoring one becomes the card title.
package extract
