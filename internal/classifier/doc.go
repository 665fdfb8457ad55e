// Package classifier decides which supported language a short video title is
// written in.
//
// Classification is an ordered cascade of independent rules. Each rule either
// declines (NoMatch) or produces a verdict, and the first verdict wins:
//
//  1. script gate: kana or Hangul means Japanese/Korean, reported as unknown
//  2. ideograph density: enough CJK ideographs means Chinese
//  3. strong keywords: unambiguous self-references ("mandarin", "espanol")
//  4. weak keywords ("chinese", "french") that count only next to
//     language-learning vocabulary
//  5. medium keywords backed by accents, function words or "video oficial"
//  6. function-word voting across English, Spanish and French
//
// The keyword tables are static, folded, and shared by every Classifier.
// A Classifier holds no mutable state and is safe for concurrent use.
package classifier
