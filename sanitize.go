package tweetvec

import (
	"regexp"
	"strings"
)

// emojiSanitizer maps emoji code points to ASCII emoticons the tokenizer
// grammar understands. The mapping is lossy.
var emojiSanitizer = strings.NewReplacer(
	"\u2019", "'",
	`\u2019`, "'",
	`\u002c`, ",",
	"\U0001F600", ":D",
	"\U0001F601", ":D",
	"\U0001F602", ":'-)",
	"\U0001F603", ":)",
	"\U0001F604", ":)",
	"\U0001F605", ":)",
	"\U0001F606", ":-D",
	"\U0001F607", "O:-)",
	"\U0001F608", ">:-)",
	"\U0001F609", ";)",
	"\U0001F60A", ":)",
	"\U0001F60B", ":p",
	"\U0001F60C", ":)",
	"\U0001F60D", "3>",
	"\U0001F60E", "B-)",
	"\U0001F60F", ";-)",
	"\U0001F610", ":|",
	"\U0001F611", ":|",
	"\U0001F612", ":(",
	"\U0001F613", "^_^",
	"\U0001F614", ":(",
	"\U0001F615", ">_<",
	"\U0001F616", ":|",
	"\U0001F617", ":*",
	"\U0001F618", ":*",
	"\U0001F619", ":*",
	"\U0001F61A", ":*",
	"\U0001F61B", ":p",
	"\U0001F61C", ";p",
	"\U0001F61D", ":p",
	"\U0001F61E", ":(",
	"\U0001F61F", ":-S",
	"\U0001F620", ">:(",
	"\U0001F621", ":-[",
	"\U0001F622", ":'(",
	"\U0001F623", ":(",
	"\U0001F624", ":|",
	"\U0001F625", ":|",
	"\U0001F626", ":(",
	"\U0001F627", ":(",
	"\U0001F628", ":(",
	"\U0001F629", "|-)",
	"\U0001F62A", "|-)",
	"\U0001F62B", "(:|",
	"\U0001F62C", ":(",
	"\U0001F62D", ":'(",
	"\U0001F62E", ":-o",
	"\U0001F62F", ":-x",
	"\U0001F630", ":(",
	"\U0001F631", ":-@",
	"\U0001F632", ":-o",
	"\U0001F633", "-^_^-",
	"\U0001F634", "|-)",
	"\U0001F635", "%-)",
	"\U0001F636", ":|",
	"\U0001F641", ":-(",
	"\U0001F642", ":-)",
)

// htmlSanitizer decodes the entities that show up in scraped tweets.
// Anything not listed is left as is.
var htmlSanitizer = strings.NewReplacer(
	"<p>", "",
	"</p>", "",
	"&#32;", " ", "&#032;", " ",
	"&#33;", "!", "&#033;", "!",
	"&quot;", `"`, "&#34;", `"`, "&#034;", `"`,
	"&#35;", "#", "&#035;", "#",
	"&#36;", "$", "&#036;", "$",
	"&#37;", "%", "&#037;", "%",
	"&amp;", "&", "&#38;", "&", "&#038;", "&",
	"&#39;", "'", "&#039;", "'",
	"&#40;", "(", "&#040;", "(",
	"&#41;", ")", "&#041;", ")",
	"&#42;", "*", "&#042;", "*",
	"&#43;", "+", "&#043;", "+",
	"&#44;", ",", "&#044;", ",",
	"&#45;", "-", "&#045;", "-",
	"&#46;", ".", "&#046;", ".",
	"&#47;", "/", "&#047;", "/",
	"&#58;", ":", "&#058;", ":",
	"&#59;", ";", "&#059;", ";",
	"&lt;", "<", "&#60;", "<", "&#060;", "<",
	"&#61;", "=", "&#061;", "=",
	"&gt;", ">", "&#62;", ">", "&#062;", ">",
	"&#63;", "?", "&#063;", "?",
	"&#64;", "@", "&#064;", "@",
	"&#91;", "[", "&#091;", "[",
	"&#92;", `\`, "&#092;", `\`,
	"&#93;", "]", "&#093;", "]",
	"&#94;", "^", "&#094;", "^",
	"&#95;", "_", "&#095;", "_",
	"&#123;", "{",
	"&#124;", "|",
	"&#125;", "}",
	"&#126;", "~",
	"&nbsp;", " ", "&#160;", " ",
	"&#8211;", "-", "&#8212;", "-",
	"&#8216;", "'", "&#8217;", "'",
	"&#8218;", ",",
	"&#8220;", `"`, "&#8221;", `"`,
)

var containsEntityRE = regexp.MustCompile(`&#[0-9]{2,4};|&[a-zA-Z0-9]{2,6};`)

// decodeEntities runs the HTML sanitizer when text carries anything that
// looks like an entity.
func decodeEntities(text string, r *strings.Replacer) string {
	if !containsEntityRE.MatchString(text) {
		return text
	}
	return strings.TrimSpace(r.Replace(text))
}
