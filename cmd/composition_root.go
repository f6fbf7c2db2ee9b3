package cmd

import (
	"proteseflow/internal/adapters/out/postgres"
	"proteseflow/internal/core/application/usecases/commands"
	"proteseflow/internal/core/application/usecases/queries"
	"proteseflow/internal/core/ports"

	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	storage    ports.FileStorage
	hasher     ports.PasswordHasher
	log        zerolog.Logger
}

func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	storage ports.FileStorage,
	hasher ports.PasswordHasher,
	log zerolog.Logger,
) CompositionRoot {
	return CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		storage:    storage,
		hasher:     hasher,
		log:        log,
	}
}

// Users returns a repository outside any transaction, for reads such as reloading the
// caller of a request.
func (c *CompositionRoot) Users() ports.UserRepository {
	return c.uowFactory.Create().UserRepository()
}

func (c *CompositionRoot) userUoWFactory() commands.UserUoWFactory {
	return FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateBootstrapSuperuserCommandHandler() commands.BootstrapSuperuserCommandHandler {
	return commands.NewBootstrapSuperuserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateRegisterDentistCommandHandler() commands.RegisterDentistCommandHandler {
	return commands.NewRegisterDentistCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateAuthenticateCommandHandler() commands.AuthenticateCommandHandler {
	return commands.NewAuthenticateCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateUpdateProfileCommandHandler() commands.UpdateProfileCommandHandler {
	return commands.NewUpdateProfileCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangePasswordCommandHandler() commands.ChangePasswordCommandHandler {
	return commands.NewChangePasswordCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateCreateUserCommandHandler() commands.CreateUserCommandHandler {
	return commands.NewCreateUserCommandHandler(c.userUoWFactory(), c.hasher)
}

func (c *CompositionRoot) CreateEditUserCommandHandler() commands.EditUserCommandHandler {
	return commands.NewEditUserCommandHandler(c.userUoWFactory())
}

func (c *CompositionRoot) CreateChangeAccountStateCommandHandler() commands.ChangeAccountStateCommandHandler {
	return commands.NewChangeAccountStateCommandHandler(c.fullUoWFactory(), c.storage, c.log)
}

func (c *CompositionRoot) CreatePurgeUserCommandHandler() commands.PurgeUserCommandHandler {
	return commands.NewPurgeUserCommandHandler(c.fullUoWFactory(), c.storage, c.log)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.fullUoWFactory(), c.storage, c.log)
}

func (c *CompositionRoot) CreateEditOrderCommandHandler() commands.EditOrderCommandHandler {
	return commands.NewEditOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	return commands.NewDeleteOrderCommandHandler(c.orderUoWFactory(), c.storage, c.log)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() queries.GetDashboardQueryHandler {
	return queries.NewGetDashboardQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUsersQueryHandler() queries.ListUsersQueryHandler {
	return queries.NewListUsersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUserQueryHandler() queries.GetUserQueryHandler {
	return queries.NewGetUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAttachmentURLQueryHandler() queries.GetAttachmentURLQueryHandler {
	return queries.NewGetAttachmentURLQueryHandler(c.gormDB, c.storage, c.configs.DownloadTTL)
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
