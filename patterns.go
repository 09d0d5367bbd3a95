package tweetvec

import (
	"regexp"

	"github.com/dlclark/regexp2"
)

// The tweet grammar needs look-behind, look-ahead and back-references, none
// of which RE2 supports, so the fragments below are compiled with regexp2.
// Character classes are spelled out in ASCII where the intent is ASCII.
const (
	// delimiterClass covers separators, control and format characters,
	// punctuation, marks and symbols.
	delimiterClass = `[\p{Z}\p{Cc}\p{Cf}\p{Co}\p{P}\p{M}\p{S}]`

	urlExpr   = `(?:(?i:https?|ftp)://(?:-\.)?(?>[^\s/?.#-]+\.?)*(?:/[^\s.]*)?)`
	emailExpr = `(?:[a-zA-Z0-9+._%\-]{1,256}@[a-zA-Z0-9][a-zA-Z0-9\-]{0,64}(?:\.[a-zA-Z0-9][a-zA-Z0-9\-]{0,25})+)`
	phoneExpr = `(?:(?:\+?[01][\-\s.]*)?(?:\(?[0-9]{3}[\-\s.)]*)?[0-9]{3}[\-\s.]*[0-9]{4})`

	mentionExpr = `(?:@+[A-Za-z]+[A-Za-z0-9_]+)`
	hashtagExpr = `(?:#+[A-Za-z]+[A-Za-z0-9_'\-]*[A-Za-z0-9_]+)`

	numberExpr          = `(?:[+\-]?[0-9]+(?:,[0-9]+)?(?:\.[0-9]+)?)`
	specialNumberExpr   = `(?:\$?[+\-]?[0-9]+(?:[.|,:\-][0-9]+)*(?i:%|fm|am|pm|p|lb|c|st|nd|rd|th)?)`
	separatedNumberExpr = `(?:[0-9]+(?i:am|pm|c|st|nd|rd|th)?[/|,\-]+[0-9]+(?:[/|,\-][0-9]+)*(?i:%|fm|am|pm|lb|c|p|st|nd|rd|th)?)`

	letterDotExpr  = `(?:[a-zA-Z]\.(?:[a-zA-Z]\.?)+)`
	wordDashExpr   = `(?:[a-zA-Z][a-zA-Z'\-_]+[a-zA-Z])`
	wordExpr       = `(?:[A-Za-z0-9_]+)`
	ellipsisExpr   = `(?:\.(?:\s*\.)+)`
	nonSpaceExpr   = `(?:\S)`
	slashSlangBody = `(?:[a-zA-Z]/[a-zA-Z]*|\\m/)`

	emoticonEyes  = `[:;=8xX*<>^|#%]`
	emoticonNose  = `'?[-_co^./]?\\?`
	emoticonMouth = `[()\[\]/\\}{*.^<>=@|,bdDpPLScoO$X#J3&]`
)

func delimited(expr string) string {
	return `(?<=^|` + delimiterClass + `)` + expr + `(?=$|` + delimiterClass + `)`
}

// The forward face may repeat its mouth (":-))))"); the reversed face
// ("(-:") may not.
var emoticonExpr = delimited(`(?:` +
	`[<>oO0}3|]?` + emoticonEyes + emoticonNose + `0?(?<mouth>` + emoticonMouth + `)\k<mouth>*` +
	`|` +
	`0?` + emoticonMouth + emoticonEyes + `[<>]?` +
	`)`)

var slashSlangExpr = delimited(slashSlangBody)

// tokenExpr is the tokenizer alternation. Order decides ambiguous input and
// must not change.
var tokenExpr = emoticonExpr +
	`|` + urlExpr +
	`|` + phoneExpr +
	`|` + emailExpr +
	`|` + mentionExpr +
	`|` + hashtagExpr +
	`|` + slashSlangExpr +
	`|` + letterDotExpr +
	`|` + wordDashExpr +
	`|` + separatedNumberExpr +
	`|` + specialNumberExpr +
	`|` + wordExpr +
	`|` + ellipsisExpr +
	`|` + nonSpaceExpr

var tokenRE = regexp2.MustCompile(tokenExpr, regexp2.None)

func fullMatch(expr string) *regexp2.Regexp {
	return regexp2.MustCompile(`^(?:`+expr+`)\z`, regexp2.None)
}

var (
	emoticonRE        = fullMatch(emoticonExpr)
	urlRE             = fullMatch(urlExpr)
	emailRE           = fullMatch(emailExpr)
	phoneRE           = fullMatch(phoneExpr)
	mentionRE         = fullMatch(mentionExpr)
	hashtagRE         = fullMatch(hashtagExpr)
	numberRE          = fullMatch(numberExpr)
	specialNumberRE   = fullMatch(specialNumberExpr)
	separatedNumberRE = fullMatch(separatedNumberExpr)
	slashSlangRE      = fullMatch(slashSlangExpr)
	letterDotRE       = fullMatch(letterDotExpr)
)

// These three need nothing beyond RE2.
var (
	punctuationRE = regexp.MustCompile("^[!-/:-@\\[-`{-~\\s]+$")
	underscoreRE  = regexp.MustCompile(`^_+$`)
	leadLetterRE  = regexp.MustCompile(`^[a-zA-Z]`)
)

func matches(re *regexp2.Regexp, s string) bool {
	ok, err := re.MatchString(s)
	return err == nil && ok
}

// IsEmoticon reports whether s is a single emoticon such as ":-)" or "(:".
func IsEmoticon(s string) bool { return matches(emoticonRE, s) }

// IsURL reports whether s is an http, https or ftp URL.
func IsURL(s string) bool { return matches(urlRE, s) }

// IsEmail reports whether s is an email address.
func IsEmail(s string) bool { return matches(emailRE, s) }

// IsPhone reports whether s looks like a North American phone number.
func IsPhone(s string) bool { return matches(phoneRE, s) }

// IsMention reports whether s is an @user reference.
func IsMention(s string) bool { return matches(mentionRE, s) }

// IsHashtag reports whether s is a #hashtag.
func IsHashtag(s string) bool { return matches(hashtagRE, s) }

// IsNumeric reports whether s is a plain signed number, optionally with a
// thousands group and decimals.
func IsNumeric(s string) bool { return matches(numberRE, s) }

// IsSpecialNumeric reports whether s is a number with currency, unit or
// ordinal decoration, e.g. "$3.25", "97.1FM", "8.30pm", "1st".
func IsSpecialNumeric(s string) bool { return matches(specialNumberRE, s) }

// IsSeparatedNumeric reports whether s is a run of numbers joined by
// slashes, commas or dashes, e.g. "8/11/12" or "6-7pm".
func IsSeparatedNumeric(s string) bool { return matches(separatedNumberRE, s) }

// IsSlashSlang reports whether s is a slash abbreviation like "w/" or "\m/".
func IsSlashSlang(s string) bool { return matches(slashSlangRE, s) }

// IsAlternatingLetterDot reports whether s has the "L.O.V.E" shape.
func IsAlternatingLetterDot(s string) bool { return matches(letterDotRE, s) }

// IsPunctuation reports whether s consists only of ASCII punctuation and
// whitespace.
func IsPunctuation(s string) bool { return punctuationRE.MatchString(s) }

// IsUnderscores reports whether s consists only of underscores.
func IsUnderscores(s string) bool { return underscoreRE.MatchString(s) }

// StartsWithLetter reports whether s begins with an ASCII letter.
func StartsWithLetter(s string) bool { return leadLetterRE.MatchString(s) }
