// Package mocks provides shared test doubles for the store, auth and service
// interfaces.
//
// Store and service mocks embed testify's mock.Mock; set expectations with
// On and check them with AssertExpectations. Store mocks return themselves
// from WithTx so expectations hold inside transactions. Pair them with
// NoopTransactor, which runs the transaction body with a nil *sql.Tx.
//
// Auth mocks are func-field structs:
//
//	jwt := &mocks.MockJWTService{
//	    ValidateTokenFn: func(ctx context.Context, token string) (*auth.Claims, error) {
//	        return &auth.Claims{UserID: userID}, nil
//	    },
//	}
package mocks
