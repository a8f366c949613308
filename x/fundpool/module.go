package fundpool

import (
	"encoding/json"

	"cosmossdk.io/core/appmodule"
	"github.com/cosmos/cosmos-sdk/client"
	"github.com/cosmos/cosmos-sdk/codec"
	cdctypes "github.com/cosmos/cosmos-sdk/codec/types"
	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/cosmos/cosmos-sdk/types/module"
	"github.com/grpc-ecosystem/grpc-gateway/runtime"

	"github.com/openalpha/fund-pool/x/fundpool/keeper"
	"github.com/openalpha/fund-pool/x/fundpool/types"
)

const (
	ModuleName = types.ModuleName
)

var (
	_ module.AppModuleBasic = AppModuleBasic{}
	_ appmodule.AppModule   = AppModule{}
)

// AppModuleBasic defines the basic application module for fundpool
type AppModuleBasic struct{}

// Name returns the module's name
func (AppModuleBasic) Name() string {
	return ModuleName
}

// RegisterLegacyAminoCodec registers the module's types on the given LegacyAmino codec
func (AppModuleBasic) RegisterLegacyAminoCodec(cdc *codec.LegacyAmino) {
	cdc.RegisterConcrete(&types.MsgDeposit{}, "fundpool/MsgDeposit", nil)
	cdc.RegisterConcrete(&types.MsgWithdrawAll{}, "fundpool/MsgWithdrawAll", nil)
	cdc.RegisterConcrete(&types.MsgManagerDeposit{}, "fundpool/MsgManagerDeposit", nil)
	cdc.RegisterConcrete(&types.MsgManagerWithdraw{}, "fundpool/MsgManagerWithdraw", nil)
	cdc.RegisterConcrete(&types.MsgManagerWithdrawAll{}, "fundpool/MsgManagerWithdrawAll", nil)
	cdc.RegisterConcrete(&types.MsgReturnToInvestor{}, "fundpool/MsgReturnToInvestor", nil)
	cdc.RegisterConcrete(&types.MsgReturnToAll{}, "fundpool/MsgReturnToAll", nil)
	cdc.RegisterConcrete(&types.MsgNominateManager{}, "fundpool/MsgNominateManager", nil)
	cdc.RegisterConcrete(&types.MsgAcceptManager{}, "fundpool/MsgAcceptManager", nil)
	cdc.RegisterConcrete(&types.MsgSetRemainingFundsAddress{}, "fundpool/MsgSetRemainingFundsAddress", nil)
	cdc.RegisterConcrete(&types.MsgSetTokenDenom{}, "fundpool/MsgSetTokenDenom", nil)
	cdc.RegisterConcrete(&types.MsgSetDepositMultiple{}, "fundpool/MsgSetDepositMultiple", nil)
	cdc.RegisterConcrete(&types.MsgSetMinDeposit{}, "fundpool/MsgSetMinDeposit", nil)
	cdc.RegisterConcrete(&types.MsgSetMaxDeposit{}, "fundpool/MsgSetMaxDeposit", nil)
	cdc.RegisterConcrete(&types.MsgStartDeposits{}, "fundpool/MsgStartDeposits", nil)
	cdc.RegisterConcrete(&types.MsgStopDeposits{}, "fundpool/MsgStopDeposits", nil)
	cdc.RegisterConcrete(&types.MsgStartWithdrawals{}, "fundpool/MsgStartWithdrawals", nil)
	cdc.RegisterConcrete(&types.MsgStopWithdrawals{}, "fundpool/MsgStopWithdrawals", nil)
}

// RegisterInterfaces registers the module's interface types
func (AppModuleBasic) RegisterInterfaces(registry cdctypes.InterfaceRegistry) {
	registry.RegisterImplementations((*sdk.Msg)(nil),
		&types.MsgDeposit{},
		&types.MsgWithdrawAll{},
		&types.MsgManagerDeposit{},
		&types.MsgManagerWithdraw{},
		&types.MsgManagerWithdrawAll{},
		&types.MsgReturnToInvestor{},
		&types.MsgReturnToAll{},
		&types.MsgNominateManager{},
		&types.MsgAcceptManager{},
		&types.MsgSetRemainingFundsAddress{},
		&types.MsgSetTokenDenom{},
		&types.MsgSetDepositMultiple{},
		&types.MsgSetMinDeposit{},
		&types.MsgSetMaxDeposit{},
		&types.MsgStartDeposits{},
		&types.MsgStopDeposits{},
		&types.MsgStartWithdrawals{},
		&types.MsgStopWithdrawals{},
	)
}

// DefaultGenesis returns default genesis state as raw bytes
func (AppModuleBasic) DefaultGenesis(cdc codec.JSONCodec) json.RawMessage {
	bz, _ := json.Marshal(types.DefaultGenesis())
	return bz
}

// ValidateGenesis performs genesis state validation
func (AppModuleBasic) ValidateGenesis(cdc codec.JSONCodec, config client.TxEncodingConfig, bz json.RawMessage) error {
	var gs types.GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		return err
	}
	return gs.Validate()
}

// RegisterGRPCGatewayRoutes registers the gRPC Gateway routes for the module
func (AppModuleBasic) RegisterGRPCGatewayRoutes(clientCtx client.Context, mux *runtime.ServeMux) {
	// TODO: Register gRPC gateway routes when proto generation is set up
}

// AppModule implements an application module for the fundpool module
type AppModule struct {
	AppModuleBasic
	keeper *keeper.Keeper
}

// NewAppModule creates a new AppModule object
func NewAppModule(k *keeper.Keeper) AppModule {
	return AppModule{
		AppModuleBasic: AppModuleBasic{},
		keeper:         k,
	}
}

// Name returns the module's name
func (am AppModule) Name() string {
	return ModuleName
}

// RegisterServices registers module services
func (am AppModule) RegisterServices(cfg module.Configurator) {
	// Register MsgServer
	// Note: In a full implementation, you would register the proto-generated server
	// For now, we'll use the custom MsgServer
	_ = keeper.NewMsgServerImpl(am.keeper)
}

// InitGenesis initializes the fund from genesis state
func (am AppModule) InitGenesis(ctx sdk.Context, cdc codec.JSONCodec, bz json.RawMessage) {
	var gs types.GenesisState
	if err := json.Unmarshal(bz, &gs); err != nil {
		panic(err)
	}
	if err := am.keeper.InitGenesis(ctx, &gs); err != nil {
		panic(err)
	}
}

// ExportGenesis exports the fund configuration
func (am AppModule) ExportGenesis(ctx sdk.Context, cdc codec.JSONCodec) json.RawMessage {
	bz, _ := json.Marshal(am.keeper.ExportGenesis(ctx))
	return bz
}

// IsOnePerModuleType implements the depinject.OnePerModuleType interface
func (am AppModule) IsOnePerModuleType() {}

// IsAppModule implements the appmodule.AppModule interface
func (am AppModule) IsAppModule() {}
