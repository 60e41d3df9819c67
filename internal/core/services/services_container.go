package services

import (
	portsrepo "github.com/SscSPs/branch_ledger/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/branch_ledger/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portssvc.PostingPublisher) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Posting:    NewPostingService(repos, WithPostingPublisher(publisher)),
		Statement:  NewStatementService(repos.StatementRepo, repos.AccountRepo, repos.CurrencyRepo),
		Commission: NewCommissionService(repos.CommissionRepo),
		Account:    NewAccountService(repos.AccountRepo),
	}
}
