package progress

import "learninghub/internal/domain/progress"

type saveInput struct {
	V    string `query:"v" doc:"Cache-busting parameter"`
	Body progress.SaveRequest
}

type saveOutput struct {
	Body progress.SaveResponse
}

type listInput struct {
	UserID string `path:"userId" doc:"employee_<id> or user_<uuid>"`
	V      string `query:"v"`
}

type listOutput struct {
	Body progress.RecordsResponse
}

type reportInput struct {
	V string `query:"v"`
}

type reportOutput struct {
	Body progress.Report
}
