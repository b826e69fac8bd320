package domain

// Country is one row of the static phone-country reference table:
// identifier, flag, display name, dial code and a placeholder showing the
// expected national number format. Loaded once at startup, never mutated.
type Country struct {
	ID          string
	Emoji       string
	Name        string
	Code        string // dial code, with leading "+"
	Placeholder string
}

// FindCountry returns the country with the given id, or nil
func FindCountry(id string) *Country {
	for i := range Countries {
		if Countries[i].ID == id {
			return &Countries[i]
		}
	}
	return nil
}

// Countries is the reference dataset backing the country selector and the
// dial-code prefixing of phone numbers.
var Countries = []Country{
	{ID: "nl", Emoji: "🇳🇱", Name: "Netherlands", Code: "+31", Placeholder: "6 12345678"},
	{ID: "us", Emoji: "🇺🇸", Name: "United States", Code: "+1", Placeholder: "(555) 123-4567"},
	{ID: "gb", Emoji: "🇬🇧", Name: "United Kingdom", Code: "+44", Placeholder: "7400 123456"},
	{ID: "de", Emoji: "🇩🇪", Name: "Germany", Code: "+49", Placeholder: "151 12345678"},
	{ID: "fr", Emoji: "🇫🇷", Name: "France", Code: "+33", Placeholder: "6 12 34 56 78"},
	{ID: "es", Emoji: "🇪🇸", Name: "Spain", Code: "+34", Placeholder: "612 34 56 78"},
	{ID: "it", Emoji: "🇮🇹", Name: "Italy", Code: "+39", Placeholder: "312 345 6789"},
	{ID: "pt", Emoji: "🇵🇹", Name: "Portugal", Code: "+351", Placeholder: "912 345 678"},
	{ID: "be", Emoji: "🇧🇪", Name: "Belgium", Code: "+32", Placeholder: "470 12 34 56"},
	{ID: "at", Emoji: "🇦🇹", Name: "Austria", Code: "+43", Placeholder: "664 123456"},
	{ID: "ch", Emoji: "🇨🇭", Name: "Switzerland", Code: "+41", Placeholder: "78 123 45 67"},
	{ID: "ie", Emoji: "🇮🇪", Name: "Ireland", Code: "+353", Placeholder: "85 123 4567"},
	{ID: "dk", Emoji: "🇩🇰", Name: "Denmark", Code: "+45", Placeholder: "20 12 34 56"},
	{ID: "se", Emoji: "🇸🇪", Name: "Sweden", Code: "+46", Placeholder: "70 123 45 67"},
	{ID: "no", Emoji: "🇳🇴", Name: "Norway", Code: "+47", Placeholder: "406 12 345"},
	{ID: "fi", Emoji: "🇫🇮", Name: "Finland", Code: "+358", Placeholder: "41 2345678"},
	{ID: "pl", Emoji: "🇵🇱", Name: "Poland", Code: "+48", Placeholder: "512 345 678"},
	{ID: "cz", Emoji: "🇨🇿", Name: "Czechia", Code: "+420", Placeholder: "601 123 456"},
	{ID: "hu", Emoji: "🇭🇺", Name: "Hungary", Code: "+36", Placeholder: "20 123 4567"},
	{ID: "ro", Emoji: "🇷🇴", Name: "Romania", Code: "+40", Placeholder: "712 034 567"},
	{ID: "gr", Emoji: "🇬🇷", Name: "Greece", Code: "+30", Placeholder: "691 234 5678"},
	{ID: "tr", Emoji: "🇹🇷", Name: "Turkey", Code: "+90", Placeholder: "501 234 56 78"},
	{ID: "ua", Emoji: "🇺🇦", Name: "Ukraine", Code: "+380", Placeholder: "50 123 4567"},
	{ID: "ca", Emoji: "🇨🇦", Name: "Canada", Code: "+1", Placeholder: "(555) 123-4567"},
	{ID: "mx", Emoji: "🇲🇽", Name: "Mexico", Code: "+52", Placeholder: "222 123 4567"},
	{ID: "br", Emoji: "🇧🇷", Name: "Brazil", Code: "+55", Placeholder: "11 96123-4567"},
	{ID: "ar", Emoji: "🇦🇷", Name: "Argentina", Code: "+54", Placeholder: "11 2345-6789"},
	{ID: "au", Emoji: "🇦🇺", Name: "Australia", Code: "+61", Placeholder: "412 345 678"},
	{ID: "nz", Emoji: "🇳🇿", Name: "New Zealand", Code: "+64", Placeholder: "21 123 4567"},
	{ID: "jp", Emoji: "🇯🇵", Name: "Japan", Code: "+81", Placeholder: "90-1234-5678"},
	{ID: "cn", Emoji: "🇨🇳", Name: "China", Code: "+86", Placeholder: "131 2345 6789"},
	{ID: "kr", Emoji: "🇰🇷", Name: "South Korea", Code: "+82", Placeholder: "10-1234-5678"},
	{ID: "in", Emoji: "🇮🇳", Name: "India", Code: "+91", Placeholder: "81234 56789"},
	{ID: "id", Emoji: "🇮🇩", Name: "Indonesia", Code: "+62", Placeholder: "812-345-678"},
	{ID: "sg", Emoji: "🇸🇬", Name: "Singapore", Code: "+65", Placeholder: "8123 4567"},
	{ID: "za", Emoji: "🇿🇦", Name: "South Africa", Code: "+27", Placeholder: "71 123 4567"},
	{ID: "il", Emoji: "🇮🇱", Name: "Israel", Code: "+972", Placeholder: "50-123-4567"},
	{ID: "ae", Emoji: "🇦🇪", Name: "United Arab Emirates", Code: "+971", Placeholder: "50 123 4567"},
	{ID: "sa", Emoji: "🇸🇦", Name: "Saudi Arabia", Code: "+966", Placeholder: "51 234 5678"},
}
