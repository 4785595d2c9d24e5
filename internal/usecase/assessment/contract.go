package assessment

import domassess "github.com/kailas-cloud/econpath/internal/domain/assessment"

// FormProvider supplies the self-assessment form.
type FormProvider interface {
	Form() domassess.Form
}
