package views

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/doctordigital/drdigital/content"
	"github.com/doctordigital/drdigital/schema"
	"github.com/doctordigital/drdigital/site"
)

// section renders fn inside the layout.
func section(p Page, fn func(buf *bytes.Buffer)) templ.Component {
	return Layout(p, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var buf bytes.Buffer
		fn(&buf)
		_, err := w.Write(buf.Bytes())
		return err
	}))
}

func postCard(buf *bytes.Buffer, p content.BlogPost) {
	buf.WriteString(`<article class="post-card">`)
	if img := p.FeaturedImage; img != nil {
		fmt.Fprintf(buf, `<img src="%s" alt="%s" width="%d" height="%d" loading="lazy">`,
			esc(img.URL), esc(img.Alt), img.Width, img.Height)
	}
	buf.WriteString("<h3>")
	link(buf, p.Path(), "", p.Title)
	buf.WriteString("</h3>")
	if t, ok := p.Published(); ok {
		buf.WriteString(`<time datetime="` + esc(p.PublishedDate) + `">` + esc(FormatDate(t)) + "</time>")
	}
	if p.Excerpt != "" {
		tag(buf, "p", "excerpt", p.Excerpt)
	}
	buf.WriteString("</article>")
}

func serviceCard(buf *bytes.Buffer, s site.Service) {
	buf.WriteString(`<article class="service-card"><h3>`)
	link(buf, s.Path(), "", s.Name)
	buf.WriteString("</h3>")
	tag(buf, "p", "", s.Summary)
	buf.WriteString("</article>")
}

func reviewList(buf *bytes.Buffer, reviews []site.Review) {
	if len(reviews) == 0 {
		return
	}
	buf.WriteString(`<section class="reviews"><h2>Τι λένε οι ιατροί</h2>`)
	for _, r := range reviews {
		buf.WriteString("<blockquote>")
		tag(buf, "p", "", r.Body)
		tag(buf, "cite", "", r.Author+", "+r.Specialty)
		buf.WriteString("</blockquote>")
	}
	buf.WriteString("</section>")
}

func faqList(buf *bytes.Buffer, faqs []schema.QA) {
	if len(faqs) == 0 {
		return
	}
	buf.WriteString(`<section class="faq"><h2>Συχνές ερωτήσεις</h2>`)
	for _, qa := range faqs {
		buf.WriteString("<details>")
		tag(buf, "summary", "", qa.Question)
		tag(buf, "p", "", qa.Answer)
		buf.WriteString("</details>")
	}
	buf.WriteString("</section>")
}

// Home is the landing page.
func Home(p Page, posts []content.BlogPost, services []site.Service, reviews []site.Review) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<section class="hero">`)
		tag(buf, "h1", "", "Ψηφιακό marketing για ιατρούς")
		tag(buf, "p", "", p.Meta.Description)
		link(buf, "/contact/", "button", "Κλείστε δωρεάν συνάντηση")
		buf.WriteString(`</section><section class="services"><h2>Υπηρεσίες</h2>`)
		for _, s := range services {
			serviceCard(buf, s)
		}
		buf.WriteString("</section>")
		reviewList(buf, reviews)
		if len(posts) > 0 {
			buf.WriteString(`<section class="latest-posts"><h2>Από το blog</h2>`)
			for _, post := range posts {
				postCard(buf, post)
			}
			buf.WriteString("</section>")
		}
	})
}

// Services lists all services.
func Services(p Page, services []site.Service) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		tag(buf, "h1", "", "Υπηρεσίες")
		for _, s := range services {
			serviceCard(buf, s)
		}
	})
}

// Service is a single service page.
func Service(p Page, s site.Service) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="service">`)
		tag(buf, "h1", "", s.Name)
		tag(buf, "p", "lead", s.Description)
		if len(s.Benefits) > 0 {
			buf.WriteString("<ul>")
			for _, b := range s.Benefits {
				tag(buf, "li", "", b)
			}
			buf.WriteString("</ul>")
		}
		buf.WriteString("</article>")
		faqList(buf, s.FAQs)
	})
}

// Blog lists posts. An empty list renders a notice instead of failing.
func Blog(p Page, posts []content.BlogPost) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		tag(buf, "h1", "", "Blog")
		if len(posts) == 0 {
			tag(buf, "p", "empty", "Δεν υπάρχουν άρθρα αυτή τη στιγμή.")
			return
		}
		for _, post := range posts {
			postCard(buf, post)
		}
	})
}

// Post is a single blog post with its related posts.
func Post(p Page, post content.BlogPost, related []content.BlogPost) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		buf.WriteString(`<article class="post">`)
		tag(buf, "h1", "", post.Title)
		if post.Subtitle != "" {
			tag(buf, "p", "subtitle", post.Subtitle)
		}
		buf.WriteString(`<div class="post-meta">`)
		if post.Author != nil {
			tag(buf, "span", "author", post.Author.Name)
		}
		if t, ok := post.Published(); ok {
			buf.WriteString(`<time datetime="` + esc(post.PublishedDate) + `">` + esc(FormatDate(t)) + "</time>")
		}
		if rt := readingTime(post.ReadingMinutes); rt != "" {
			tag(buf, "span", "reading-time", rt)
		}
		buf.WriteString("</div>")
		if img := post.FeaturedImage; img != nil {
			fmt.Fprintf(buf, `<img class="featured" src="%s" alt="%s" width="%d" height="%d" fetchpriority="high">`,
				esc(img.URL), esc(img.Alt), img.Width, img.Height)
		}
		buf.WriteString(`<div class="post-body">`)
		content.RichText.Render(buf, post.Content)
		buf.WriteString("</div></article>")
		if len(related) > 0 {
			buf.WriteString(`<aside class="related"><h2>Σχετικά άρθρα</h2>`)
			for _, r := range related {
				postCard(buf, r)
			}
			buf.WriteString("</aside>")
		}
	})
}

// CaseStudies lists client case studies.
func CaseStudies(p Page, studies []site.CaseStudy) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		tag(buf, "h1", "", "Case studies")
		for _, cs := range studies {
			buf.WriteString(`<article class="case-study">`)
			tag(buf, "h2", "", cs.Title)
			tag(buf, "p", "client", cs.Client)
			tag(buf, "p", "", cs.Summary)
			buf.WriteString("<ul>")
			for _, r := range cs.Results {
				tag(buf, "li", "", r)
			}
			buf.WriteString("</ul></article>")
		}
	})
}

// About is the agency page.
func About(p Page, reviews []site.Review) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		tag(buf, "h1", "", "Σχετικά με εμάς")
		tag(buf, "p", "", p.Meta.Description)
		reviewList(buf, reviews)
	})
}

// Contact is the contact page.
func Contact(p Page, faqs []schema.QA) templ.Component {
	return section(p, func(buf *bytes.Buffer) {
		tag(buf, "h1", "", "Επικοινωνία")
		tag(buf, "p", "", "Πείτε μας για το ιατρείο σας και θα επικοινωνήσουμε μαζί σας εντός μίας εργάσιμης.")
		faqList(buf, faqs)
	})
}

// NotFound is the deliberate 404 page.
func NotFound() templ.Component {
	p := Page{Meta: PageMeta{Title: "Η σελίδα δεν βρέθηκε", NoIndex: true}}
	return section(p, func(buf *bytes.Buffer) {
		tag(buf, "h1", "", "Η σελίδα δεν βρέθηκε")
		tag(buf, "p", "", "Η σελίδα που ζητήσατε δεν υπάρχει ή έχει μετακινηθεί.")
		link(buf, "/blog/", "", "Δείτε όλα τα άρθρα")
	})
}

// ServerError is shown for unexpected failures.
func ServerError() templ.Component {
	p := Page{Meta: PageMeta{Title: "Κάτι πήγε στραβά", NoIndex: true}}
	return section(p, func(buf *bytes.Buffer) {
		tag(buf, "h1", "", "Κάτι πήγε στραβά")
		tag(buf, "p", "", "Δοκιμάστε ξανά σε λίγο.")
	})
}
