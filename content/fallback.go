package content

import (
	"time"

	rt "github.com/doctordigital/drdigital/richtext"
)

var fallbackAuthor = Author{
	Name: "Doctor Digital",
	Bio:  rt.Doc(rt.P("Η ομάδα ψηφιακού marketing της Doctor Digital για ιατρούς και ιατρεία.")),
}

func fallbackImage(slug, alt string) *Image {
	return &Image{
		URL:    "/public/images/blog/" + slug + ".jpg",
		Alt:    alt,
		Width:  1200,
		Height: 630,
	}
}

func fallbackPost(slug, title, excerpt, date string, body *rt.Node) BlogPost {
	t, _ := time.Parse("2006-01-02", date)
	author := fallbackAuthor
	return BlogPost{
		ID:             "fallback-" + slug,
		Slug:           slug,
		Title:          title,
		Excerpt:        excerpt,
		Content:        body,
		PublishedDate:  date,
		CreatedAt:      t,
		UpdatedAt:      t,
		FeaturedImage:  fallbackImage(slug, title),
		Author:         &author,
		ReadingMinutes: rt.ReadingMinutes(body),
		Fallback:       true,
	}
}

var fallbackPosts = []BlogPost{
	fallbackPost(
		"pos-na-veltiosete-tin-katataksi-tou-iatrikou-sas-istotopou-sti-google",
		"Πώς να βελτιώσετε την κατάταξη του ιατρικού σας ιστότοπου στη Google",
		"Πρακτικά βήματα SEO για ιατρούς: τοπική αναζήτηση, ταχύτητα, περιεχόμενο που απαντά στις ερωτήσεις των ασθενών.",
		"2024-09-12",
		rt.Doc(
			rt.P("Οι περισσότεροι ασθενείς αναζητούν γιατρό στη Google πριν κλείσουν ραντεβού. Αν ο ιστότοπός σας δεν εμφανίζεται στην πρώτη σελίδα, χάνετε ασθενείς που ήδη ψάχνουν τις υπηρεσίες σας."),
			rt.H(2, "Τοπικό SEO"),
			rt.P("Δηλώστε σωστά διεύθυνση, τηλέφωνο και ωράριο σε όλες τις σελίδες και διατηρήστε τα ίδια στοιχεία σε κάθε κατάλογο."),
			rt.H(2, "Ταχύτητα και κινητά"),
			rt.P("Ένας αργός ιστότοπος χάνει θέσεις. Συμπιέστε τις εικόνες και βεβαιωθείτε ότι κάθε σελίδα διαβάζεται άνετα στο κινητό."),
			rt.H(2, "Περιεχόμενο για ασθενείς"),
			rt.UL(
				"Απαντήστε στις συχνές ερωτήσεις των ασθενών σας.",
				"Γράψτε μία σελίδα για κάθε θεραπεία ή εξέταση.",
				"Ενημερώνετε το blog σας τακτικά.",
			),
		),
	),
	fallbackPost(
		"google-business-profile-gia-iatreia",
		"Google Business Profile για ιατρεία: ο πλήρης οδηγός",
		"Πώς να στήσετε και να συντηρείτε το προφίλ του ιατρείου σας ώστε να εμφανίζεστε στους χάρτες και στις τοπικές αναζητήσεις.",
		"2024-08-20",
		rt.Doc(
			rt.P("Το Google Business Profile είναι συχνά η πρώτη επαφή του ασθενή με το ιατρείο σας. Εμφανίζεται στους χάρτες, στις τοπικές αναζητήσεις και δίπλα στα αποτελέσματα."),
			rt.H(2, "Βασικές ρυθμίσεις"),
			rt.OL(
				"Επιβεβαιώστε την ιδιοκτησία του προφίλ.",
				"Επιλέξτε τη σωστή κύρια κατηγορία ειδικότητας.",
				"Προσθέστε ωράριο, φωτογραφίες και σύνδεσμο για ραντεβού.",
			),
			rt.H(2, "Συντήρηση"),
			rt.P("Δημοσιεύετε ενημερώσεις, απαντάτε στις ερωτήσεις και κρατάτε τα στοιχεία σας πάντα ενημερωμένα."),
		),
	),
	fallbackPost(
		"social-media-marketing-gia-giatrous",
		"Social media marketing για γιατρούς",
		"Ποια κανάλια αξίζουν για ένα ιατρείο, τι να δημοσιεύετε και πώς να μένετε εντός δεοντολογίας.",
		"2024-07-08",
		rt.Doc(
			rt.P("Τα μέσα κοινωνικής δικτύωσης χτίζουν εμπιστοσύνη πριν την πρώτη επίσκεψη. Ο ασθενής γνωρίζει τον γιατρό και την ομάδα του πριν περάσει την πόρτα του ιατρείου."),
			rt.H(2, "Τι να δημοσιεύετε"),
			rt.UL(
				"Ενημερωτικά βίντεο για συχνές παθήσεις.",
				"Παρουσίαση της ομάδας και του χώρου.",
				"Νέα του ιατρείου και αλλαγές ωραρίου.",
			),
			rt.H(2, "Δεοντολογία"),
			rt.P("Αποφύγετε υποσχέσεις αποτελεσμάτων και μην δημοσιεύετε στοιχεία ασθενών χωρίς γραπτή συγκατάθεση."),
		),
	),
	fallbackPost(
		"kritikes-asthenon-kai-online-fimi",
		"Κριτικές ασθενών και online φήμη",
		"Πώς να ζητάτε κριτικές, πώς να απαντάτε στις αρνητικές και γιατί επηρεάζουν την κατάταξή σας.",
		"2024-06-03",
		rt.Doc(
			rt.P("Οι κριτικές ασθενών επηρεάζουν τόσο την απόφαση νέων ασθενών όσο και την τοπική κατάταξη στη Google."),
			rt.H(2, "Ζητήστε κριτικές"),
			rt.P("Μετά από μια καλή επίσκεψη στείλτε έναν απλό σύνδεσμο αξιολόγησης με SMS ή email."),
			rt.H(2, "Απαντήστε με επαγγελματισμό"),
			rt.P("Απαντάτε σε κάθε κριτική, θετική ή αρνητική, χωρίς να αποκαλύπτετε ιατρικές πληροφορίες."),
		),
	),
	fallbackPost(
		"iatrikos-istotopos-pou-fernei-rantevou",
		"Ιατρικός ιστότοπος που φέρνει ραντεβού",
		"Τα στοιχεία που μετατρέπουν έναν επισκέπτη σε ασθενή: σαφής πρόσκληση, εύκολη επικοινωνία, αξιοπιστία.",
		"2024-05-15",
		rt.Doc(
			rt.P("Ένας όμορφος ιστότοπος δεν αρκεί. Πρέπει να οδηγεί τον επισκέπτη στο ραντεβού με όσο το δυνατόν λιγότερα βήματα."),
			rt.H(2, "Σαφής πρόσκληση"),
			rt.P("Κάθε σελίδα χρειάζεται ένα εμφανές κουμπί κλήσης ή online κράτησης."),
			rt.H(2, "Αξιοπιστία"),
			rt.UL(
				"Βιογραφικό και πιστοποιήσεις του ιατρού.",
				"Πραγματικές κριτικές ασθενών.",
				"Φωτογραφίες του χώρου.",
			),
		),
	),
}

// GetAllFallbackPosts returns the static fallback posts, newest first. The
// posts are deep copies; callers may modify them.
func GetAllFallbackPosts() []BlogPost {
	out := make([]BlogPost, len(fallbackPosts))
	for i, p := range fallbackPosts {
		out[i] = p.clone()
	}
	return out
}

// GetFallbackPostBySlug returns a copy of the fallback post with exactly
// this slug, or nil.
func GetFallbackPostBySlug(slug string) *BlogPost {
	for i := range fallbackPosts {
		if fallbackPosts[i].Slug == slug {
			p := fallbackPosts[i].clone()
			return &p
		}
	}
	return nil
}
