package summarize

import "fmt"

// promptTemplate constrains the model to a JSON object with exactly two
// attributes: a plain-text meetingSummary and an actionItems array. The
// deadline default (meeting date + one week, dd/mm/yy) is part of the
// instruction so the model synthesizes it when the meeting never names one.
const promptTemplate = `Here is a transcript of a meeting along with the date:

%s
%s

**Task:**
1. Provide a summary of the entire meeting transcript as a separate JSON object, meeting summary should be plain text not in points and name the attribute meetingSummary only, also do not make the summary too long.
2. List action items as an array of JSON objects with the following attributes, name the attribute actionItems only:
   - **task**: Brief description of the task
   - **responsiblePerson**: Who is assigned to the task
   - **deadline**: Due date.
   only in case deadline is missing, give a deadline of one week from the current date that is provided, for example if the date provided is 14/2/25 give a deadline of 21/2/25, keep the deadline in the format dd/mm/yy strictly.
   Don't give any other response anything else except the above.
`

// BuildPrompt renders the summarization instruction for one transcript
// segment and its formatted meeting date.
func BuildPrompt(transcriptText, formattedDate string) string {
	return fmt.Sprintf(promptTemplate, transcriptText, formattedDate)
}
