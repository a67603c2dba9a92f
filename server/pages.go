package server

import (
	"embed"
	"html/template"
	"net/http"
	"net/url"

	"github.com/miladmahdian/professional-signup-hub/server/models"
)

//go:embed templates/*.html
var templatesFS embed.FS

var pageTemplates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// professionalsPage renders the list view, honouring the same '?source='
// narrowing as the list endpoint.
func professionalsPage(rw http.ResponseWriter, r *http.Request) {
	source := r.URL.Query().Get("source")

	professionals, err := models.AllProfessionals(source)
	if err != nil {
		http.Error(rw, err.Error(), http.StatusInternalServerError)
		return
	}

	renderPage(rw, "professionals.html", map[string]interface{}{
		"Professionals": professionals,
		"Source":        source,
		"Sources":       models.SignupSources,
	})
}

// signupPage renders the create form & handles its submission through the
// same validation path as the single-create endpoint.
func signupPage(rw http.ResponseWriter, r *http.Request) {
	fieldErrors := map[string][]string{}
	values := url.Values{}

	if r.Method == http.MethodPost {
		if err := r.ParseForm(); err != nil {
			http.Error(rw, err.Error(), http.StatusBadRequest)
			return
		}
		values = r.PostForm

		params := paramsFromForm(values)
		fieldErrors = validateProfessionalParams(&params, true)
		checkTakenIdentityFields(fieldErrors, &params)

		if len(fieldErrors) == 0 {
			professional := params.record()
			err := models.CreateProfessional(professional)
			if err == nil {
				http.Redirect(rw, r, "/", http.StatusSeeOther)
				return
			}

			if !models.IsUniqueConstraintError(err) {
				http.Error(rw, err.Error(), http.StatusInternalServerError)
				return
			}
			fieldErrors = nonFieldErrors(err.Error())
		}
	}

	renderPage(rw, "signup.html", map[string]interface{}{
		"Sources":     models.SignupSources,
		"FieldErrors": fieldErrors,
		"Values":      values,
	})
}

// ---------------------------------------------------------------------------------//
// Helper functions
// --------------------------------------------------------------------------------//

func renderPage(rw http.ResponseWriter, name string, data interface{}) {
	rw.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(rw, name, data); err != nil {
		logg.Errorf("unable to render %v: %v", name, err)
	}
}

func paramsFromForm(form url.Values) ProfessionalParams {
	formValue := func(name string) *string {
		if !form.Has(name) {
			return nil
		}

		value := form.Get(name)
		return &value
	}

	return ProfessionalParams{
		FullName:    formValue("full_name"),
		Email:       formValue("email"),
		Phone:       formValue("phone"),
		CompanyName: formValue("company_name"),
		JobTitle:    formValue("job_title"),
		Source:      formValue("source"),
	}
}
