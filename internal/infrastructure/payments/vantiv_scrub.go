package payments

import "regexp"

const scrubReplacement = "${1}[FILTERED]${2}"

// scrubPatterns covers every element whose inner text is sensitive:
// credentials, card number, CVV, bank account number, paypage registration
// id and the network-token cryptogram. Matches are non-greedy and bounded
// by the matching close tag so multi-line transcripts stay intact.
var scrubPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?s)(<user>).*?(</user>)`),
	regexp.MustCompile(`(?s)(<password>).*?(</password>)`),
	regexp.MustCompile(`(?s)(<number>).*?(</number>)`),
	regexp.MustCompile(`(?s)(<cardValidationNum>).*?(</cardValidationNum>)`),
	regexp.MustCompile(`(?s)(<accountNumber>).*?(</accountNumber>)`),
	regexp.MustCompile(`(?s)(<paypageRegistrationId>).*?(</paypageRegistrationId>)`),
	regexp.MustCompile(`(?s)(<authenticationValue>).*?(</authenticationValue>)`),
}

// Scrub redacts sensitive element content from a raw wire transcript,
// preserving the surrounding tags. It operates on text, not parsed XML, so
// it is safe to run over partial or malformed transcripts.
func Scrub(transcript string) string {
	for _, pattern := range scrubPatterns {
		transcript = pattern.ReplaceAllString(transcript, scrubReplacement)
	}
	return transcript
}
