package stepcheck

// commonMistakes catalogs the known mistake patterns per operation. Used
// by insight generation and by callers that want to prime hint phrasing
// for an operation before any step arrives.
var commonMistakes = map[string][]string{
	"addition": {
		"counting_by_wrong_increment",
		"starting_from_wrong_number",
		"going_backward_instead_forward",
		"skipping_numbers",
		"adding_instead_of_counting",
	},
	"subtraction": {
		"going_forward_instead_backward",
		"subtracting_wrong_amount",
		"starting_from_wrong_number",
		"skipping_numbers",
		"negative_result_confusion",
	},
	"multiplication": {
		"adding_wrong_groups",
		"incorrect_grouping",
		"skip_counting_errors",
		"repeated_addition_mistakes",
	},
	"division": {
		"incorrect_grouping",
		"remainder_confusion",
		"multiplication_reversal",
	},
}

// CommonMistakes returns the known mistake patterns for an operation, or
// nil for an unknown operation.
func CommonMistakes(operation string) []string {
	return commonMistakes[operation]
}
