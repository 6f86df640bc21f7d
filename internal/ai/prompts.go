package ai

// IdentityPrompt opens every system context. The team sells phones, so the
// assistant's voice is anchored there.
const IdentityPrompt = "You are a social media assistant for a phone-retail sales team. " +
	"The team posts about smartphones, accessories and mobile technology on LinkedIn, " +
	"in a practical, first-person voice aimed at other sales professionals."

// DailyInstruction asks for exactly one post idea per invocation.
const DailyInstruction = "Suggest one actionable LinkedIn post idea the team could write today. " +
	"Give it a strong opening hook and 2-3 short supporting points. " +
	"No hashtags, no calls to action."

// CustomInstructionTemplate wraps the user's request. The %s is the raw
// request text.
const CustomInstructionTemplate = "Write a LinkedIn post about: %s\n\n" +
	"Structure it with an attention-grabbing hook, 3-4 key points, " +
	"a short suggestion for an accompanying visual, relevant hashtags, " +
	"and a closing call to action."

// DailyFallback is posted when the generation backend fails on the daily
// path. It must read as real content, never as an error.
const DailyFallback = "Post idea for today: share the one question customers asked you most this week, " +
	"and how you answered it.\n" +
	"- Start with the question word for word\n" +
	"- Explain the answer in two sentences\n" +
	"- Close with what it taught you about what buyers actually care about"

// CustomFallback is posted when the generation backend fails on the custom
// path. A canned iPhone/Android comparison post that fits the team's domain.
const CustomFallback = "iPhone or Android? After years on the sales floor, here's what I tell every customer:\n\n" +
	"1. iPhone buyers pay for consistency - updates, resale value, and an ecosystem that just works.\n" +
	"2. Android buyers pay for choice - hardware variety, customization, and price points for every budget.\n" +
	"3. The best phone is the one that fits how you already live.\n\n" +
	"What do you recommend, and why? Share your take below.\n\n" +
	"#MobileSales #iPhone #Android #RetailLife"
