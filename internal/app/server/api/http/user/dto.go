package user

import "learninghub/internal/domain/user"

type listInput struct {
	V string `query:"v"`
}

type listOutput struct {
	Body user.UsersResponse
}

type upsertInput struct {
	Body user.UpsertRequest
}

type upsertOutput struct {
	Body user.UpsertResponse
}
