// Package site holds the static brochure content of the agency: services,
// frequently asked questions, client reviews and case studies.
package site

import "github.com/doctordigital/drdigital/schema"

// Service is one of the agency's service pages.
type Service struct {
	Slug        string
	Name        string
	Summary     string
	Description string
	Image       string
	Benefits    []string
	FAQs        []schema.QA
}

// Path is the site-relative URL of the service page.
func (s Service) Path() string { return "/services/" + s.Slug + "/" }

// Review is a client testimonial.
type Review struct {
	Author    string
	Specialty string
	Body      string
	Rating    float64
	Date      string
}

// CaseStudy is a summarized client engagement.
type CaseStudy struct {
	Slug    string
	Client  string
	Title   string
	Summary string
	Results []string
}

var services = []Service{
	{
		Slug:        "seo-gia-iatrous",
		Name:        "SEO για ιατρούς",
		Summary:     "Πρώτη σελίδα στη Google για τις αναζητήσεις των ασθενών σας.",
		Description: "Τεχνικό και τοπικό SEO, περιεχόμενο για κάθε θεραπεία και μηνιαίες αναφορές κατάταξης.",
		Image:       "/public/images/services/seo.jpg",
		Benefits:    []string{"Τοπική κατάταξη", "Τεχνικός έλεγχος", "Μηνιαίες αναφορές"},
		FAQs: []schema.QA{
			{Question: "Σε πόσο καιρό φαίνονται αποτελέσματα;", Answer: "Οι πρώτες βελτιώσεις εμφανίζονται συνήθως σε 2 έως 3 μήνες."},
			{Question: "Χρειάζεται νέος ιστότοπος;", Answer: "Όχι πάντα. Ξεκινάμε με έλεγχο του υπάρχοντος ιστότοπου."},
		},
	},
	{
		Slug:        "google-ads-gia-iatreia",
		Name:        "Google Ads για ιατρεία",
		Summary:     "Διαφημίσεις που φέρνουν κλήσεις και ραντεβού από την πρώτη εβδομάδα.",
		Description: "Στοχευμένες καμπάνιες αναζήτησης και χαρτών με μέτρηση κλήσεων και κρατήσεων.",
		Image:       "/public/images/services/google-ads.jpg",
		Benefits:    []string{"Άμεσα αποτελέσματα", "Μέτρηση κλήσεων", "Έλεγχος κόστους"},
		FAQs: []schema.QA{
			{Question: "Ποιο είναι το ελάχιστο budget;", Answer: "Προτείνουμε τουλάχιστον 300€ τον μήνα για μία ειδικότητα."},
		},
	},
	{
		Slug:        "social-media-gia-giatrous",
		Name:        "Social media για γιατρούς",
		Summary:     "Περιεχόμενο που χτίζει εμπιστοσύνη πριν την πρώτη επίσκεψη.",
		Description: "Στρατηγική, παραγωγή βίντεο και διαχείριση λογαριασμών με σεβασμό στην ιατρική δεοντολογία.",
		Image:       "/public/images/services/social-media.jpg",
		Benefits:    []string{"Παραγωγή βίντεο", "Ημερολόγιο δημοσιεύσεων", "Διαχείριση σχολίων"},
	},
	{
		Slug:        "kataskevi-iatrikou-istotopou",
		Name:        "Κατασκευή ιατρικού ιστότοπου",
		Summary:     "Γρήγορος, ασφαλής ιστότοπος σχεδιασμένος για ραντεβού.",
		Description: "Σχεδιασμός, ανάπτυξη και φιλοξενία με online κρατήσεις και δομημένα δεδομένα για τη Google.",
		Image:       "/public/images/services/website.jpg",
		Benefits:    []string{"Online ραντεβού", "Ταχύτητα", "Δομημένα δεδομένα"},
		FAQs: []schema.QA{
			{Question: "Πόσο διαρκεί η κατασκευή;", Answer: "Τέσσερις έως έξι εβδομάδες από την έγκριση του σχεδίου."},
		},
	},
}

var faqs = []schema.QA{
	{Question: "Συνεργάζεστε μόνο με ιατρούς;", Answer: "Ναι. Εξειδικευόμαστε σε ιατρούς, οδοντιάτρους και ιατρικά κέντρα."},
	{Question: "Υπάρχει δέσμευση συμβολαίου;", Answer: "Όχι. Οι συνεργασίες μας ανανεώνονται μηνιαία."},
	{Question: "Πώς μετράτε τα αποτελέσματα;", Answer: "Με κλήσεις, φόρμες επικοινωνίας και online ραντεβού, όχι μόνο με επισκέψεις."},
}

var reviews = []Review{
	{Author: "Δρ. Μαρία Κ.", Specialty: "Δερματολόγος", Body: "Διπλασιάσαμε τα ραντεβού από τη Google μέσα σε έξι μήνες.", Rating: 5, Date: "2024-03-10"},
	{Author: "Δρ. Γιώργος Π.", Specialty: "Ορθοπαιδικός", Body: "Επαγγελματίες με κατανόηση του ιατρικού χώρου.", Rating: 5, Date: "2024-01-22"},
	{Author: "Δρ. Ελένη Σ.", Specialty: "Οδοντίατρος", Body: "Ο νέος ιστότοπος φέρνει κρατήσεις κάθε εβδομάδα.", Rating: 4, Date: "2023-11-05"},
}

var caseStudies = []CaseStudy{
	{
		Slug:    "dermatologiko-kentro-athinas",
		Client:  "Δερματολογικό κέντρο, Αθήνα",
		Title:   "Από τη 3η σελίδα στην πρώτη θέση",
		Summary: "Τοπικό SEO και νέο περιεχόμενο για τις βασικές θεραπείες του κέντρου.",
		Results: []string{"+180% οργανική επισκεψιμότητα", "2x online ραντεβού"},
	},
	{
		Slug:    "orthopaidiko-iatreio-thessalonikis",
		Client:  "Ορθοπαιδικό ιατρείο, Θεσσαλονίκη",
		Title:   "Google Ads με κόστος ανά ραντεβού κάτω από 15€",
		Summary: "Καμπάνιες αναζήτησης με μέτρηση κλήσεων και στοχευμένες σελίδες προορισμού.",
		Results: []string{"-40% κόστος ανά κλήση", "+65 νέοι ασθενείς τον μήνα"},
	},
}

// Services returns the service pages in menu order.
func Services() []Service {
	out := make([]Service, len(services))
	copy(out, services)
	return out
}

// ServiceBySlug returns the service with this slug.
func ServiceBySlug(slug string) (Service, bool) {
	for _, s := range services {
		if s.Slug == slug {
			return s, true
		}
	}
	return Service{}, false
}

// FAQs returns the general questions shown on the home and contact pages.
func FAQs() []schema.QA {
	out := make([]schema.QA, len(faqs))
	copy(out, faqs)
	return out
}

// Reviews returns client testimonials, newest first.
func Reviews() []Review {
	out := make([]Review, len(reviews))
	copy(out, reviews)
	return out
}

// CaseStudies returns the published case studies.
func CaseStudies() []CaseStudy {
	out := make([]CaseStudy, len(caseStudies))
	copy(out, caseStudies)
	return out
}
